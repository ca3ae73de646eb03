package paytrail

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultPlatform is sent as platform-name when no platform is configured.
const DefaultPlatform = "paytrailgw"

// Credentials identify the merchant account. The secret is only ever fed to
// the signer; it is never logged or serialized.
type Credentials struct {
	Account string
	Secret  string
}

// Header is the per-request metadata set used both as HMAC input and as the
// literal outbound request headers.
type Header struct {
	Account        string
	Algorithm      Algorithm
	Method         string
	Nonce          string
	Timestamp      int64
	TransactionID  string
	TokenizationID string
	Platform       string
}

// HeaderOption customizes a header at construction.
type HeaderOption func(*Header)

func WithTransactionID(id string) HeaderOption {
	return func(h *Header) { h.TransactionID = id }
}

func WithTokenizationID(id string) HeaderOption {
	return func(h *Header) { h.TokenizationID = id }
}

func WithPlatform(name string) HeaderOption {
	return func(h *Header) { h.Platform = name }
}

// NewHeader builds request metadata with a fresh random nonce and the
// current epoch timestamp. Construction has no side effects beyond drawing
// from the nonce randomness source.
func NewHeader(method string, creds Credentials, algorithm Algorithm, opts ...HeaderOption) Header {
	h := Header{
		Account:   creds.Account,
		Algorithm: algorithm,
		Method:    method,
		Nonce:     uuid.New().String(),
		Timestamp: time.Now().Unix(),
		Platform:  DefaultPlatform,
	}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Fields returns the literal outbound header set. Transaction and
// tokenization IDs are included only when present.
func (h Header) Fields() map[string]string {
	fields := map[string]string{
		"checkout-account":   h.Account,
		"checkout-algorithm": string(h.Algorithm),
		"checkout-method":    h.Method,
		"checkout-nonce":     h.Nonce,
		"checkout-timestamp": strconv.FormatInt(h.Timestamp, 10),
		"platform-name":      h.Platform,
	}

	if h.TransactionID != "" {
		fields["checkout-transaction-id"] = h.TransactionID
	}
	if h.TokenizationID != "" {
		fields["checkout-tokenization-id"] = h.TokenizationID
	}

	return fields
}
