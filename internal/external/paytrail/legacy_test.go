package paytrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyForm(t *testing.T) {
	signer := NewAuthcodeSigner("6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ")

	form := func() LegacyForm {
		return LegacyForm{
			MerchantID:    "13466",
			Amount:        "22.00",
			OrderNumber:   "42",
			Currency:      LegacyCurrency,
			ReturnAddress: "https://shop.example.com/payments/legacy/notify",
			CancelAddress: "https://shop.example.com/payments/cancel",
			NotifyAddress: "https://shop.example.com/payments/legacy/notify",
			Type:          "S1",
			Culture:       "en_US",
		}
	}

	t.Run("should sign the form into its authcode field", func(t *testing.T) {
		// given
		f := form()

		// when
		err := f.Sign(signer)

		// then
		require.NoError(t, err)
		assert.Len(t, f.Authcode, 32)
		assert.Equal(t, f.Authcode, Authcode("6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ", f.authcodeValues()))
	})

	t.Run("should refuse non-EUR submissions", func(t *testing.T) {
		// given
		f := form()
		f.Currency = "USD"

		// when
		err := f.Sign(signer)

		// then
		assert.Error(t, err)
	})

	t.Run("should encode to the uppercase form field names", func(t *testing.T) {
		// given
		f := form()
		require.NoError(t, f.Sign(signer))

		// when
		values, err := f.Values()

		// then
		require.NoError(t, err)
		assert.Equal(t, "42", values.Get("ORDER_NUMBER"))
		assert.Equal(t, "22.00", values.Get("AMOUNT"))
		assert.Equal(t, f.Authcode, values.Get("AUTHCODE"))
	})
}
