package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/pkg/logger"
)

// payerMessage is the only thing a payer-facing failure ever says. Raw
// provider and internal errors stay in the logs.
const payerMessage = "payment could not be completed, please contact support"

// statusFor maps the error taxonomy onto HTTP statuses: security failures
// are forbidden, validation failures bad requests, state conflicts 409,
// provider transport failures a bad gateway.
func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindSecurity:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindState:
		return http.StatusConflict
	case apperror.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondPayerError logs the real error and shows the payer the generic
// message.
func respondPayerError(c *gin.Context, log *logger.Logger, err error) {
	log.Error("checkout: %v", err)
	c.JSON(statusFor(err), gin.H{"message": payerMessage})
}

// respondWebhookError maps the error for the provider's webhook delivery.
// The payer never sees these; the body exists for the provider's logs.
func respondWebhookError(c *gin.Context, log *logger.Logger, err error) {
	log.Error("webhook: %v", err)
	c.JSON(statusFor(err), gin.H{"message": http.StatusText(statusFor(err))})
}
