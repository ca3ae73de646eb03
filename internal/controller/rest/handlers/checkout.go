package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/pkg/logger"
)

//go:generate mockgen -source=checkout.go -destination=mock_checkout.go -package=handlers

// CheckoutService is the outbound-operations surface the handler exposes.
type CheckoutService interface {
	Checkout(ctx context.Context, orderID string) (paytrail.CreatePaymentResponse, error)
	LegacyForm(ctx context.Context, orderID string) (paytrail.LegacyForm, error)
	RefundOrder(ctx context.Context, orderID string, amount int64) (payment.Payment, error)
	ResolveToken(ctx context.Context, tokenizationID string) (paytrail.TokenizationResponse, error)
	ChargeToken(ctx context.Context, orderID, token string) (payment.Payment, error)
	AuthorizeToken(ctx context.Context, orderID, token string) (payment.Payment, error)
	CommitAuthorization(ctx context.Context, orderID string) (payment.Payment, error)
	RevertAuthorization(ctx context.Context, orderID string) (payment.Payment, error)
}

type CheckoutHandler struct {
	service CheckoutService
	log     *logger.Logger
}

func NewCheckoutHandler(service CheckoutService, log *logger.Logger) CheckoutHandler {
	return CheckoutHandler{service: service, log: log}
}

// Create starts a payment for the order and returns the provider redirect.
func (h *CheckoutHandler) Create(c *gin.Context) {
	resp, err := h.service.Checkout(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondPayerError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction_id": resp.TransactionID,
		"href":           resp.Href,
		"reference":      resp.Reference,
	})
}

// LegacyForm returns the signed legacy E1 form fields for the order, ready
// to be rendered as a POST form.
func (h *CheckoutHandler) LegacyForm(c *gin.Context) {
	form, err := h.service.LegacyForm(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondPayerError(c, h.log, err)
		return
	}

	values, err := form.Values()
	if err != nil {
		respondPayerError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

type refundRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// Refund refunds part or all of the order's settled payment. This is a
// merchant endpoint, so the real error is returned.
func (h *CheckoutHandler) Refund(c *gin.Context) {
	var req refundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.service.RefundOrder(c.Request.Context(), c.Param("order_id"), req.Amount)
	if err != nil {
		h.log.Error("refund: %v", err)
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ResolveToken exchanges a tokenization id for a reusable card token.
func (h *CheckoutHandler) ResolveToken(c *gin.Context) {
	resp, err := h.service.ResolveToken(c.Request.Context(), c.Param("tokenization_id"))
	if err != nil {
		h.log.Error("tokenize: %v", err)
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// Charge performs a merchant-initiated charge against a stored token.
func (h *CheckoutHandler) Charge(c *gin.Context) {
	h.tokenPayment(c, h.service.ChargeToken)
}

// Authorize places a merchant-initiated authorization hold.
func (h *CheckoutHandler) Authorize(c *gin.Context) {
	h.tokenPayment(c, h.service.AuthorizeToken)
}

func (h *CheckoutHandler) tokenPayment(c *gin.Context, call func(context.Context, string, string) (payment.Payment, error)) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := call(c.Request.Context(), c.Param("order_id"), req.Token)
	if err != nil {
		h.log.Error("token payment: %v", err)
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Commit captures a previously placed authorization hold.
func (h *CheckoutHandler) Commit(c *gin.Context) {
	h.holdOperation(c, h.service.CommitAuthorization)
}

// Revert releases a previously placed authorization hold.
func (h *CheckoutHandler) Revert(c *gin.Context) {
	h.holdOperation(c, h.service.RevertAuthorization)
}

func (h *CheckoutHandler) holdOperation(c *gin.Context, call func(context.Context, string) (payment.Payment, error)) {
	p, err := call(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.log.Error("hold operation: %v", err)
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
