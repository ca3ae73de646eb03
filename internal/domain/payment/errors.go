package payment

import "paytrailgw/internal/controller/apperror"

// Aliases so callers in this package's orbit don't need to import apperror
// directly.
var (
	ErrNotFound             = apperror.ErrPaymentNotFound
	ErrIllegalTransition    = apperror.ErrIllegalTransition
	ErrRefundExceedsBalance = apperror.ErrRefundExceedsBalance
	ErrRemoteIDMismatch     = apperror.ErrRemoteIDMismatch
	ErrInvalidStatus        = apperror.ErrInvalidStatus
	ErrEventAlreadyStored   = apperror.ErrEventAlreadyStored
)
