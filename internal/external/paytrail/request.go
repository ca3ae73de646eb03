package paytrail

// Item is one order line in provider terms: unit price in minor currency
// units, an integer quantity and the VAT percentage applied to the line.
// The line sum is allowed to disagree with the order total when discounts
// exist; see the remove-items strategy in the checkout builder.
type Item struct {
	UnitPrice     int64  `json:"unitPrice"`
	Units         int64  `json:"units"`
	VatPercentage int    `json:"vatPercentage"`
	ProductCode   string `json:"productCode,omitempty"`
}

// Customer carries the payer contact details.
type Customer struct {
	Email string `json:"email"`
}

// Address is an optional invoicing address.
type Address struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// URLPair holds the success/cancel variants of a callback or redirect URL.
type URLPair struct {
	Success string `json:"success"`
	Cancel  string `json:"cancel"`
}

// CreatePaymentRequest is the create-payment payload. Reference is the order
// id and must never change after construction; Stamp is a single-use random
// token identifying this specific request attempt.
type CreatePaymentRequest struct {
	Stamp            string   `json:"stamp"`
	Reference        string   `json:"reference"`
	Amount           int64    `json:"amount"`
	Currency         string   `json:"currency"`
	Language         string   `json:"language"`
	Items            []Item   `json:"items,omitempty"`
	Customer         Customer `json:"customer"`
	RedirectURLs     URLPair  `json:"redirectUrls"`
	CallbackURLs     URLPair  `json:"callbackUrls"`
	InvoicingAddress *Address `json:"invoicingAddress,omitempty"`

	// Token is set on merchant-initiated (token) charge and authorization
	// requests only.
	Token string `json:"token,omitempty"`
}

// CreatePaymentResponse is the provider's answer to a create-payment call.
type CreatePaymentResponse struct {
	TransactionID string `json:"transactionId"`
	Href          string `json:"href"`
	Reference     string `json:"reference"`
}

// PaymentStatus is the provider's view of a payment, returned by the
// get-payment poll.
type PaymentStatus struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
	Stamp         string `json:"stamp"`
}

// RefundRequest refunds part or all of a settled transaction. RefundStamp is
// a fresh correlation token distinct from the original payment stamp.
type RefundRequest struct {
	Amount          int64   `json:"amount"`
	RefundStamp     string  `json:"refundStamp"`
	RefundReference string  `json:"refundReference"`
	CallbackURLs    URLPair `json:"callbackUrls"`
}

// RefundResponse acknowledges a refund request.
type RefundResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// TokenizationCard describes the stored card behind a token.
type TokenizationCard struct {
	Type        string `json:"type"`
	PartialPan  string `json:"partialPan"`
	ExpireYear  string `json:"expireYear"`
	ExpireMonth string `json:"expireMonth"`
}

// TokenizationResponse resolves a tokenization id to a reusable card token.
type TokenizationResponse struct {
	Token string           `json:"token"`
	Card  TokenizationCard `json:"card"`
}

// TokenPaymentResponse is returned by token charge/authorization-hold calls.
type TokenPaymentResponse struct {
	TransactionID string `json:"transactionId"`
}
