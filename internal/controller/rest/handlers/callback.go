package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paytrailgw/internal/callback"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/pkg/logger"
)

//go:generate mockgen -source=callback.go -destination=mock_callback.go -package=handlers

// CallbackService reconciles inbound provider callbacks and serves the
// indexed event history they leave behind.
type CallbackService interface {
	HandleReturn(ctx context.Context, params map[string]string) (payment.Payment, error)
	HandleNotify(ctx context.Context, params map[string]string) (payment.Payment, error)
	HandleLegacyNotify(ctx context.Context, params map[string]string) (payment.Payment, error)
	OrderEvents(ctx context.Context, orderID string) ([]payment.ProviderEvent, error)
}

type CallbackHandler struct {
	service CallbackService
	log     *logger.Logger
}

func NewCallbackHandler(service CallbackService, log *logger.Logger) CallbackHandler {
	return CallbackHandler{service: service, log: log}
}

// Return handles the payer landing back on the store after the provider's
// payment page. The payer never sees the real failure cause.
func (h *CallbackHandler) Return(c *gin.Context) {
	params := paytrail.Flatten(c.Request.URL.Query())

	p, err := h.service.HandleReturn(c.Request.Context(), params)
	if err != nil {
		respondPayerError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": p.OrderID,
		"state":    p.State,
	})
}

// Cancel handles the payer cancelling on the provider's payment page. The
// provider signs cancel redirects the same way as success ones, so the same
// validation path applies.
func (h *CallbackHandler) Cancel(c *gin.Context) {
	h.Return(c)
}

// Events returns the indexed provider-event history of an order. This is a
// support endpoint for merchants and operators, not a payer-facing page, so
// it answers with real errors.
func (h *CallbackHandler) Events(c *gin.Context) {
	orderID := c.Param("order_id")

	events, err := h.service.OrderEvents(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, callback.ErrEventSearchDisabled) {
			c.JSON(http.StatusNotImplemented, gin.H{"message": err.Error()})
			return
		}
		h.log.Error("callback - Events: %v", err)
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"events":   events,
	})
}

// Notify handles the provider's server-to-server callback. The response goes
// to the provider, never the payer, so the real status code matters: the
// provider retries anything that is not a 2xx.
func (h *CallbackHandler) Notify(c *gin.Context) {
	params := paytrail.Flatten(c.Request.URL.Query())

	p, err := h.service.HandleNotify(c.Request.Context(), params)
	if err != nil {
		respondWebhookError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": p.OrderID,
		"state":    p.State,
	})
}

// LegacyNotify handles server-to-server callbacks signed with the legacy
// MD5 authcode scheme.
func (h *CallbackHandler) LegacyNotify(c *gin.Context) {
	params := paytrail.Flatten(c.Request.URL.Query())

	p, err := h.service.HandleLegacyNotify(c.Request.Context(), params)
	if err != nil {
		respondWebhookError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": p.OrderID,
		"state":    p.State,
	})
}
