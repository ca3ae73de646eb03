// Package callback validates inbound provider callbacks and hands the
// verified result to the payment reconciler. Redirect returns and webhook
// notifies carry the same field set and run through the same validation
// sequence; only the error surfacing at the HTTP boundary differs.
package callback

import (
	"fmt"
	"strconv"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
)

// Callback field names as they appear in the redirect/webhook query string.
const (
	FieldReference     = paytrail.HeaderPrefix + "reference"
	FieldTransactionID = paytrail.HeaderPrefix + "transaction-id"
	FieldStamp         = paytrail.HeaderPrefix + "stamp"
	FieldStatus        = paytrail.HeaderPrefix + "status"
	FieldAmount        = paytrail.HeaderPrefix + "amount"
)

// Validator runs the validation sequence over a flattened callback. No field
// is trusted before the whole sequence passes: required fields, signature,
// order correlation, stamp correlation, status enumeration, in that order.
type Validator struct {
	signer *paytrail.HmacSigner
	legacy *paytrail.AuthcodeSigner
}

func NewValidator(signer *paytrail.HmacSigner, legacy *paytrail.AuthcodeSigner) *Validator {
	return &Validator{signer: signer, legacy: legacy}
}

// Validate checks a modern-scheme callback against the order it claims to
// settle and returns the event to reconcile. Callbacks arrive as query
// strings, so the signature covers the fields with an empty body.
func (v *Validator) Validate(params map[string]string, ord order.Order, channel payment.Channel) (payment.ProviderEvent, error) {
	for _, field := range []string{FieldReference, FieldTransactionID, FieldStatus, paytrail.SignatureField} {
		if params[field] == "" {
			return payment.ProviderEvent{}, fmt.Errorf("%w: %s", apperror.ErrMissingField, field)
		}
	}

	if err := v.signer.Verify(params, nil, params[paytrail.SignatureField]); err != nil {
		return payment.ProviderEvent{}, err
	}

	if params[FieldReference] != ord.ID {
		return payment.ProviderEvent{}, fmt.Errorf("%w: callback references order %s, resolving order %s",
			apperror.ErrOrderMismatch, params[FieldReference], ord.ID)
	}

	if ord.Stamp != "" && params[FieldStamp] != ord.Stamp {
		return payment.ProviderEvent{}, fmt.Errorf("%w: order %s", apperror.ErrStampMismatch, ord.ID)
	}

	status, err := payment.ParseCallbackStatus(params[FieldStatus])
	if err != nil {
		return payment.ProviderEvent{}, err
	}

	amount, currency, err := v.amount(params, ord)
	if err != nil {
		return payment.ProviderEvent{}, err
	}

	return payment.ProviderEvent{
		OrderID:       ord.ID,
		TransactionID: params[FieldTransactionID],
		Status:        status,
		Amount:        amount,
		Currency:      currency,
		Channel:       channel,
	}, nil
}

// ValidateLegacy checks a legacy-scheme callback. The authcode covers the
// ORDER_NUMBER, TIMESTAMP, PAID and METHOD values in that fixed order.
func (v *Validator) ValidateLegacy(params map[string]string, ord order.Order, channel payment.Channel) (payment.ProviderEvent, error) {
	for _, field := range []string{
		paytrail.LegacyParamOrderNumber,
		paytrail.LegacyParamTimestamp,
		paytrail.LegacyParamReturnAuthcode,
	} {
		if params[field] == "" {
			return payment.ProviderEvent{}, fmt.Errorf("%w: %s", apperror.ErrMissingField, field)
		}
	}

	values := []string{
		params[paytrail.LegacyParamOrderNumber],
		params[paytrail.LegacyParamTimestamp],
		params[paytrail.LegacyParamPaid],
		params[paytrail.LegacyParamMethod],
	}
	if err := v.legacy.Verify(values, params[paytrail.LegacyParamReturnAuthcode]); err != nil {
		return payment.ProviderEvent{}, err
	}

	if params[paytrail.LegacyParamOrderNumber] != ord.ID {
		return payment.ProviderEvent{}, fmt.Errorf("%w: callback references order %s, resolving order %s",
			apperror.ErrOrderMismatch, params[paytrail.LegacyParamOrderNumber], ord.ID)
	}

	// The legacy notify carries PAID only once the payment settled.
	status := payment.CallbackPending
	if params[paytrail.LegacyParamPaid] != "" {
		status = payment.CallbackOk
	}

	amount, err := order.ToMinorUnits(ord.Total)
	if err != nil {
		return payment.ProviderEvent{}, err
	}

	return payment.ProviderEvent{
		OrderID:       ord.ID,
		TransactionID: params[paytrail.LegacyParamPaymentID],
		Status:        status,
		Amount:        amount,
		Currency:      paytrail.LegacyCurrency,
		Channel:       channel,
	}, nil
}

// amount prefers the amount echoed in the callback, falling back to the
// order total when the provider omitted it.
func (v *Validator) amount(params map[string]string, ord order.Order) (int64, string, error) {
	if raw := params[FieldAmount]; raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %s", apperror.ErrMissingField, FieldAmount)
		}
		return amount, ord.Total.Currency, nil
	}

	amount, err := order.ToMinorUnits(ord.Total)
	if err != nil {
		return 0, "", err
	}
	return amount, ord.Total.Currency, nil
}
