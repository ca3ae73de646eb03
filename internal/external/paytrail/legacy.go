package paytrail

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Legacy (E1) form interface. The payment is submitted as a signed
// form-encoded POST; the provider calls back with signed query parameters.
// Only EUR is supported by this scheme.

// Legacy callback parameter names. ORDER_NUMBER, TIMESTAMP, PAID and METHOD
// participate in the return authcode, in exactly that order.
const (
	LegacyParamOrderNumber    = "ORDER_NUMBER"
	LegacyParamTimestamp      = "TIMESTAMP"
	LegacyParamPaid           = "PAID"
	LegacyParamMethod         = "METHOD"
	LegacyParamReturnAuthcode = "RETURN_AUTHCODE"
	LegacyParamStatus         = "STATUS"
	LegacyParamPaymentID      = "PAYMENT_ID"
	LegacyParamPaymentMethod  = "PAYMENT_METHOD"
)

// LegacyCurrency is the only currency the legacy scheme accepts.
const LegacyCurrency = "EUR"

// LegacyForm is a legacy payment submission. Amount is a decimal string
// ("22.00"); the interface predates minor-unit amounts.
type LegacyForm struct {
	MerchantID       string `url:"MERCHANT_ID"`
	Amount           string `url:"AMOUNT"`
	OrderNumber      string `url:"ORDER_NUMBER"`
	OrderDescription string `url:"ORDER_DESCRIPTION,omitempty"`
	Currency         string `url:"CURRENCY"`
	ReturnAddress    string `url:"RETURN_ADDRESS"`
	CancelAddress    string `url:"CANCEL_ADDRESS"`
	NotifyAddress    string `url:"NOTIFY_ADDRESS"`
	Type             string `url:"TYPE"`
	Culture          string `url:"CULTURE,omitempty"`
	Authcode         string `url:"AUTHCODE"`
}

// authcodeValues returns the signed fields in the order the interface
// contract fixes for outbound submissions.
func (f *LegacyForm) authcodeValues() []string {
	return []string{
		f.MerchantID,
		f.Amount,
		f.OrderNumber,
		f.OrderDescription,
		f.Currency,
		f.ReturnAddress,
		f.CancelAddress,
		f.NotifyAddress,
		f.Type,
		f.Culture,
	}
}

// Sign computes and stores the form authcode using the merchant hash.
func (f *LegacyForm) Sign(signer *AuthcodeSigner) error {
	if f.Currency != LegacyCurrency {
		return fmt.Errorf("legacy scheme supports %s only, got %s", LegacyCurrency, f.Currency)
	}

	authcode, err := signer.Sign(f.authcodeValues())
	if err != nil {
		return err
	}
	f.Authcode = authcode
	return nil
}

// Values encodes the form for transmission.
func (f LegacyForm) Values() (url.Values, error) {
	v, err := query.Values(f)
	if err != nil {
		return nil, fmt.Errorf("encode legacy form: %w", err)
	}
	return v, nil
}
