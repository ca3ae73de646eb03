package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
)

const (
	testSecret       = "SAIPPUAKAUPPIAS"
	testMerchantHash = "6pKF4jkv97zmqBJ3ZL8gUw5DfT2NMQ"
)

func testValidator() *Validator {
	return NewValidator(paytrail.NewHmacSigner(testSecret), paytrail.NewAuthcodeSigner(testMerchantHash))
}

func signedParams(t *testing.T, overrides map[string]string) map[string]string {
	t.Helper()

	params := map[string]string{
		"checkout-account":        "375917",
		"checkout-algorithm":      "sha256",
		FieldReference:            "42",
		FieldTransactionID:        "tx-1",
		FieldStamp:                "stamp-1",
		FieldStatus:               "ok",
		FieldAmount:               "2200",
	}
	for k, v := range overrides {
		params[k] = v
	}

	signature, err := paytrail.NewHmacSigner(testSecret).Sign(params, nil)
	require.NoError(t, err)
	params[paytrail.SignatureField] = signature
	return params
}

func testOrder() order.Order {
	total, _ := order.NewPrice("22.00", "EUR")
	return order.Order{ID: "42", Total: total, Stamp: "stamp-1"}
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	validator := testValidator()

	t.Run("should accept a correctly signed callback", func(t *testing.T) {
		// given
		params := signedParams(t, nil)

		// when
		ev, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.NoError(t, err)
		assert.Equal(t, payment.ProviderEvent{
			OrderID:       "42",
			TransactionID: "tx-1",
			Status:        payment.CallbackOk,
			Amount:        2200,
			Currency:      "EUR",
			Channel:       payment.ChannelWebhook,
		}, ev)
	})

	t.Run("should fall back to the order total when the amount is omitted", func(t *testing.T) {
		// given
		params := map[string]string{
			"checkout-account":   "375917",
			"checkout-algorithm": "sha256",
			FieldReference:       "42",
			FieldTransactionID:   "tx-1",
			FieldStamp:           "stamp-1",
			FieldStatus:          "ok",
		}
		signature, err := paytrail.NewHmacSigner(testSecret).Sign(params, nil)
		require.NoError(t, err)
		params[paytrail.SignatureField] = signature

		// when
		ev, err := validator.Validate(params, testOrder(), payment.ChannelRedirect)

		// then
		assert.NoError(t, err)
		assert.EqualValues(t, 2200, ev.Amount)
	})

	t.Run("should reject when a required field is missing", func(t *testing.T) {
		// given
		params := signedParams(t, nil)
		delete(params, FieldTransactionID)

		// when
		_, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrMissingField)
	})

	t.Run("should reject a tampered field before trusting anything", func(t *testing.T) {
		// given
		params := signedParams(t, nil)
		params[FieldAmount] = "1"

		// when
		_, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should reject a reference that does not match the order", func(t *testing.T) {
		// given
		params := signedParams(t, map[string]string{FieldReference: "43"})

		// when
		_, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderMismatch)
	})

	t.Run("should reject a stamp that does not match the stored one", func(t *testing.T) {
		// given
		params := signedParams(t, map[string]string{FieldStamp: "stamp-replayed"})

		// when
		_, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrStampMismatch)
	})

	t.Run("should skip the stamp check when no stamp was stored", func(t *testing.T) {
		// given
		params := signedParams(t, map[string]string{FieldStamp: "anything"})
		ord := testOrder()
		ord.Stamp = ""

		// when
		_, err := validator.Validate(params, ord, payment.ChannelWebhook)

		// then
		assert.NoError(t, err)
	})

	t.Run("should reject an unknown status instead of guessing", func(t *testing.T) {
		// given
		params := signedParams(t, map[string]string{FieldStatus: "settled"})

		// when
		_, err := validator.Validate(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidStatus)
	})
}

func TestValidator_ValidateLegacy(t *testing.T) {
	t.Parallel()

	validator := testValidator()

	legacyParams := func(t *testing.T, overrides map[string]string) map[string]string {
		t.Helper()

		params := map[string]string{
			paytrail.LegacyParamOrderNumber: "42",
			paytrail.LegacyParamTimestamp:   "1714000000",
			paytrail.LegacyParamPaid:        "2v9rqf",
			paytrail.LegacyParamMethod:      "1",
			paytrail.LegacyParamPaymentID:   "108643028",
		}
		for k, v := range overrides {
			params[k] = v
		}

		authcode, err := paytrail.NewAuthcodeSigner(testMerchantHash).Sign([]string{
			params[paytrail.LegacyParamOrderNumber],
			params[paytrail.LegacyParamTimestamp],
			params[paytrail.LegacyParamPaid],
			params[paytrail.LegacyParamMethod],
		})
		require.NoError(t, err)
		params[paytrail.LegacyParamReturnAuthcode] = authcode
		return params
	}

	t.Run("should accept a correctly signed legacy notify", func(t *testing.T) {
		// given
		params := legacyParams(t, nil)

		// when
		ev, err := validator.ValidateLegacy(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.NoError(t, err)
		assert.Equal(t, payment.CallbackOk, ev.Status)
		assert.Equal(t, "108643028", ev.TransactionID)
		assert.Equal(t, paytrail.LegacyCurrency, ev.Currency)
		assert.EqualValues(t, 2200, ev.Amount)
	})

	t.Run("should report pending when the PAID marker is absent", func(t *testing.T) {
		// given
		params := legacyParams(t, map[string]string{paytrail.LegacyParamPaid: ""})

		// when
		ev, err := validator.ValidateLegacy(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.NoError(t, err)
		assert.Equal(t, payment.CallbackPending, ev.Status)
	})

	t.Run("should reject a tampered authcode", func(t *testing.T) {
		// given
		params := legacyParams(t, nil)
		params[paytrail.LegacyParamReturnAuthcode] = "0000000000000000000000000000000000000000000000000000000000000000"

		// when
		_, err := validator.ValidateLegacy(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should reject an order number mismatch", func(t *testing.T) {
		// given
		params := legacyParams(t, map[string]string{paytrail.LegacyParamOrderNumber: "43"})

		// when
		_, err := validator.ValidateLegacy(params, testOrder(), payment.ChannelWebhook)

		// then
		assert.ErrorIs(t, err, apperror.ErrOrderMismatch)
	})
}
