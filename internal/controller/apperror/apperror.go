// Package apperror defines the error taxonomy shared by services and
// HTTP handlers. Every error belongs to a kind so callers can tell a
// condition that is safe to show the payer a generic message apart from
// one that should page an engineer.
package apperror

import "errors"

// Kind classifies an error for boundary handling.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: missing/malformed callback fields, bad status enum.
	// Surfaced to the caller, never retried.
	KindValidation
	// KindSecurity: signature, stamp, order-id or remote-id mismatch.
	// Rejected and logged, never treated as transient.
	KindSecurity
	// KindState: illegal payment transition, refund over balance.
	// Business-rule violations, not retried.
	KindState
	// KindTransport: provider timeout or non-2xx. Generic gateway failure
	// at the checkout boundary, retried by the notification worker.
	KindTransport
	// KindNotFound: order or payment cannot be resolved.
	KindNotFound
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrEventAlreadyStored = errors.New("event already stored")

	ErrMissingField  = errors.New("required callback field missing")
	ErrInvalidStatus = errors.New("invalid payment status")

	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrStampMismatch     = errors.New("stamp does not match stored request stamp")
	ErrOrderMismatch     = errors.New("callback reference does not match order")
	ErrRemoteIDMismatch  = errors.New("remote id does not match previously stored remote id")

	ErrIllegalTransition    = errors.New("illegal payment state transition")
	ErrRefundExceedsBalance = errors.New("refund amount exceeds remaining balance")

	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// KindOf maps an error chain to its kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrPaymentNotFound):
		return KindNotFound
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidStatus):
		return KindValidation
	case errors.Is(err, ErrSignatureMismatch), errors.Is(err, ErrStampMismatch),
		errors.Is(err, ErrOrderMismatch), errors.Is(err, ErrRemoteIDMismatch):
		return KindSecurity
	case errors.Is(err, ErrIllegalTransition), errors.Is(err, ErrRefundExceedsBalance):
		return KindState
	case errors.Is(err, ErrGatewayUnavailable):
		return KindTransport
	default:
		return KindUnknown
	}
}
