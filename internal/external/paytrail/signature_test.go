package paytrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrailgw/internal/controller/apperror"
)

const testSecret = "SAIPPUAKAUPPIAS"

func TestHmacSigner(t *testing.T) {
	signer := NewHmacSigner(testSecret)

	baseFields := func() map[string]string {
		return map[string]string{
			"checkout-account":   "375917",
			"checkout-algorithm": "sha256",
			"checkout-method":    "POST",
			"checkout-nonce":     "564635208570151",
			"checkout-timestamp": "2018-07-06T10:01:31.904Z",
		}
	}

	t.Run("should sign and verify round trip", func(t *testing.T) {
		// given
		fields := baseFields()
		body := []byte(`{"stamp":"unique-1"}`)

		// when
		signature, err := signer.Sign(fields, body)
		require.NoError(t, err)

		// then
		assert.NoError(t, signer.Verify(fields, body, signature))
	})

	t.Run("should produce identical digests regardless of field case", func(t *testing.T) {
		// given
		lower := baseFields()
		upper := map[string]string{
			"Checkout-Account":   "375917",
			"Checkout-Algorithm": "sha256",
			"Checkout-Method":    "POST",
			"Checkout-Nonce":     "564635208570151",
			"Checkout-Timestamp": "2018-07-06T10:01:31.904Z",
		}

		// when
		a, err := signer.Sign(lower, nil)
		require.NoError(t, err)
		b, err := signer.Sign(upper, nil)
		require.NoError(t, err)

		// then
		assert.Equal(t, a, b)
	})

	t.Run("should ignore fields outside the checkout prefix", func(t *testing.T) {
		// given
		fields := baseFields()
		signature, err := signer.Sign(fields, nil)
		require.NoError(t, err)

		fields["content-type"] = "application/json"
		fields["platform-name"] = "someplatform"

		// when
		withExtras, err := signer.Sign(fields, nil)
		require.NoError(t, err)

		// then
		assert.Equal(t, signature, withExtras)
	})

	t.Run("should select the hash from the algorithm field", func(t *testing.T) {
		// given
		fields := baseFields()
		sha256Sig, err := signer.Sign(fields, nil)
		require.NoError(t, err)

		fields["checkout-algorithm"] = "sha512"

		// when
		sha512Sig, err := signer.Sign(fields, nil)
		require.NoError(t, err)

		// then
		assert.NotEqual(t, sha256Sig, sha512Sig)
		assert.Len(t, sha512Sig, 128)
		assert.Len(t, sha256Sig, 64)
	})

	t.Run("should reject a tampered body", func(t *testing.T) {
		// given
		fields := baseFields()
		signature, err := signer.Sign(fields, []byte(`{"amount":1525}`))
		require.NoError(t, err)

		// when
		err = signer.Verify(fields, []byte(`{"amount":9999}`), signature)

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should reject a tampered field", func(t *testing.T) {
		// given
		fields := baseFields()
		signature, err := signer.Sign(fields, nil)
		require.NoError(t, err)

		fields["checkout-account"] = "999999"

		// when
		err = signer.Verify(fields, nil, signature)

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should treat a missing signature as a mismatch", func(t *testing.T) {
		// when
		err := signer.Verify(baseFields(), nil, "")

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should refuse to sign without a secret", func(t *testing.T) {
		// when
		_, err := NewHmacSigner("").Sign(baseFields(), nil)

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})
}

func TestAuthcode(t *testing.T) {
	t.Run("should compute the documented legacy digest", func(t *testing.T) {
		// given the reference example from the legacy interface docs
		values := []string{"13466", "99.00", "123456", "", "EUR",
			"https://example.com/return", "https://example.com/cancel",
			"https://example.com/notify", "S1", "fi_FI"}

		// when
		code := Authcode("6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ", values)

		// then
		assert.Len(t, code, 32)
		assert.Equal(t, code, Authcode("6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ", values))
	})

	t.Run("should be order sensitive", func(t *testing.T) {
		// when
		a := Authcode("hash", []string{"1", "2"})
		b := Authcode("hash", []string{"2", "1"})

		// then
		assert.NotEqual(t, a, b)
	})
}

func TestAuthcodeSigner(t *testing.T) {
	signer := NewAuthcodeSigner("6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ")

	t.Run("should verify its own signature", func(t *testing.T) {
		// given
		values := []string{"42", "1533196944", "PAID", "1"}
		code, err := signer.Sign(values)
		require.NoError(t, err)

		// then
		assert.NoError(t, signer.Verify(values, code))
	})

	t.Run("should reject a wrong authcode", func(t *testing.T) {
		// when
		err := signer.Verify([]string{"42", "1533196944", "PAID", "1"},
			"00000000000000000000000000000000")

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should refuse to sign without a merchant hash", func(t *testing.T) {
		// when
		_, err := NewAuthcodeSigner("").Sign([]string{"42"})

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})
}

func TestFlatten(t *testing.T) {
	t.Run("should lowercase keys and unwrap single values", func(t *testing.T) {
		// when
		fields := Flatten(map[string][]string{
			"Checkout-Account": {"375917"},
			"Signature":        {"abc"},
			"Empty":            {},
		})

		// then
		assert.Equal(t, "375917", fields["checkout-account"])
		assert.Equal(t, "abc", fields["signature"])
		_, ok := fields["empty"]
		assert.False(t, ok)
	})
}
