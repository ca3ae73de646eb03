package paytrail

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeader(t *testing.T) {
	creds := Credentials{Account: "375917", Secret: testSecret}

	t.Run("should draw a fresh nonce per request", func(t *testing.T) {
		// when
		a := NewHeader(http.MethodPost, creds, AlgorithmSHA256)
		b := NewHeader(http.MethodPost, creds, AlgorithmSHA256)

		// then
		assert.NotEmpty(t, a.Nonce)
		assert.NotEqual(t, a.Nonce, b.Nonce)
	})

	t.Run("should include ids only when set", func(t *testing.T) {
		// given
		plain := NewHeader(http.MethodGet, creds, AlgorithmSHA256)
		withIDs := NewHeader(http.MethodGet, creds, AlgorithmSHA256,
			WithTransactionID("tx-1"), WithTokenizationID("tok-1"))

		// when
		plainFields := plain.Fields()
		idFields := withIDs.Fields()

		// then
		_, ok := plainFields["checkout-transaction-id"]
		assert.False(t, ok)
		assert.Equal(t, "tx-1", idFields["checkout-transaction-id"])
		assert.Equal(t, "tok-1", idFields["checkout-tokenization-id"])
	})

	t.Run("should carry the platform name outside the signed prefix", func(t *testing.T) {
		// when
		fields := NewHeader(http.MethodPost, creds, AlgorithmSHA256,
			WithPlatform("shopx")).Fields()

		// then
		assert.Equal(t, "shopx", fields["platform-name"])
		assert.Equal(t, "375917", fields["checkout-account"])
		assert.Equal(t, "sha256", fields["checkout-algorithm"])
		assert.Equal(t, "POST", fields["checkout-method"])
		assert.NotEmpty(t, fields["checkout-timestamp"])
	})
}

func TestParseAlgorithm(t *testing.T) {
	t.Run("should accept the supported hashes", func(t *testing.T) {
		for _, raw := range []string{"sha256", "sha512"} {
			got, err := ParseAlgorithm(raw)
			assert.NoError(t, err)
			assert.Equal(t, Algorithm(raw), got)
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, raw := range []string{"", "md5", "SHA256"} {
			_, err := ParseAlgorithm(raw)
			assert.Error(t, err, raw)
		}
	})
}
