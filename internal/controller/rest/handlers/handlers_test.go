package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"paytrailgw/internal/callback"
	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/pkg/logger"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCallbackHandler_Notify(t *testing.T) {
	newHandler := func(t *testing.T) (*gin.Engine, *MockCallbackService) {
		ctrl := gomock.NewController(t)
		service := NewMockCallbackService(ctrl)
		h := NewCallbackHandler(service, logger.New("error"))

		engine := testEngine()
		engine.GET("/payments/notify", h.Notify)
		engine.GET("/payments/legacy/notify", h.LegacyNotify)
		return engine, service
	}

	t.Run("should return 200 with the reconciled state", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleNotify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params map[string]string) (payment.Payment, error) {
				assert.Equal(t, "42", params["checkout-reference"])
				return payment.Payment{OrderID: "42", State: payment.StateCompleted}, nil
			})

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/notify?checkout-reference=42&signature=s", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"state":"completed"`)
	})

	t.Run("should return 403 on a signature mismatch", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleNotify(gomock.Any(), gomock.Any()).
			Return(payment.Payment{}, apperror.ErrSignatureMismatch)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/notify?checkout-reference=42&signature=bad", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.NotContains(t, rec.Body.String(), "signature")
	})

	t.Run("should return 400 on a validation failure", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleNotify(gomock.Any(), gomock.Any()).
			Return(payment.Payment{}, apperror.ErrMissingField)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/notify", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 404 when the order cannot be resolved", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleNotify(gomock.Any(), gomock.Any()).
			Return(payment.Payment{}, apperror.ErrOrderNotFound)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/notify?checkout-reference=unknown&signature=s", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 409 on an illegal transition", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleNotify(gomock.Any(), gomock.Any()).
			Return(payment.Payment{}, apperror.ErrIllegalTransition)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/notify?checkout-reference=42&signature=s", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should route legacy notifies to the legacy path", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleLegacyNotify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params map[string]string) (payment.Payment, error) {
				assert.Equal(t, "42", params["ORDER_NUMBER"])
				return payment.Payment{OrderID: "42", State: payment.StateAuthorization}, nil
			})

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/legacy/notify?ORDER_NUMBER=42&RETURN_AUTHCODE=abc", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCallbackHandler_Return(t *testing.T) {
	newHandler := func(t *testing.T) (*gin.Engine, *MockCallbackService) {
		ctrl := gomock.NewController(t)
		service := NewMockCallbackService(ctrl)
		h := NewCallbackHandler(service, logger.New("error"))

		engine := testEngine()
		engine.GET("/payments/return", h.Return)
		return engine, service
	}

	t.Run("should show the payer only a generic message on failure", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleReturn(gomock.Any(), gomock.Any()).
			Return(payment.Payment{}, apperror.ErrSignatureMismatch)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/return?checkout-reference=42&signature=bad", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), payerMessage)
		assert.NotContains(t, rec.Body.String(), "signature")
	})

	t.Run("should return the payment state on success", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			HandleReturn(gomock.Any(), gomock.Any()).
			Return(payment.Payment{OrderID: "42", State: payment.StateAuthorization}, nil)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payments/return?checkout-reference=42&signature=s", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"order_id":"42"`)
	})
}

func TestCallbackHandler_Events(t *testing.T) {
	newHandler := func(t *testing.T) (*gin.Engine, *MockCallbackService) {
		ctrl := gomock.NewController(t)
		service := NewMockCallbackService(ctrl)
		h := NewCallbackHandler(service, logger.New("error"))

		engine := testEngine()
		engine.GET("/orders/:order_id/events", h.Events)
		return engine, service
	}

	t.Run("should return the event history of an order", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			OrderEvents(gomock.Any(), "42").
			Return([]payment.ProviderEvent{
				{OrderID: "42", TransactionID: "tx-1", Status: payment.CallbackOk, Channel: payment.ChannelWebhook},
			}, nil)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/42/events", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"transaction_id":"tx-1"`)
	})

	t.Run("should return 404 for an unknown order", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			OrderEvents(gomock.Any(), "missing").
			Return(nil, apperror.ErrOrderNotFound)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/missing/events", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 501 when event search is not configured", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			OrderEvents(gomock.Any(), "42").
			Return(nil, callback.ErrEventSearchDisabled)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/42/events", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}

func TestCheckoutHandler(t *testing.T) {
	newHandler := func(t *testing.T) (*gin.Engine, *MockCheckoutService) {
		ctrl := gomock.NewController(t)
		service := NewMockCheckoutService(ctrl)
		h := NewCheckoutHandler(service, logger.New("error"))

		engine := testEngine()
		engine.POST("/checkout/:order_id", h.Create)
		engine.POST("/checkout/:order_id/refund", h.Refund)
		engine.POST("/checkout/:order_id/token/charge", h.Charge)
		return engine, service
	}

	t.Run("should return the provider redirect on checkout", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			Checkout(gomock.Any(), "42").
			Return(paytrail.CreatePaymentResponse{
				TransactionID: "tx-1",
				Href:          "https://pay.example.com/tx-1",
				Reference:     "42",
			}, nil)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://pay.example.com/tx-1")
	})

	t.Run("should hide provider failures behind the generic payer message", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			Checkout(gomock.Any(), "42").
			Return(paytrail.CreatePaymentResponse{}, apperror.ErrGatewayUnavailable)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42", nil)
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), payerMessage)
		assert.NotContains(t, rec.Body.String(), "gateway")
	})

	t.Run("should pass the refund amount through", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			RefundOrder(gomock.Any(), "42", int64(1000)).
			Return(payment.Payment{OrderID: "42", State: payment.StatePartiallyRefunded}, nil)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42/refund", strings.NewReader(`{"amount":1000}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a refund without a positive amount", func(t *testing.T) {
		// given
		engine, _ := newHandler(t)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42/refund", strings.NewReader(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should surface real errors to the merchant on refund", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			RefundOrder(gomock.Any(), "42", int64(5000)).
			Return(payment.Payment{}, apperror.ErrRefundExceedsBalance)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42/refund", strings.NewReader(`{"amount":5000}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "balance")
	})

	t.Run("should charge a stored token", func(t *testing.T) {
		// given
		engine, service := newHandler(t)
		service.EXPECT().
			ChargeToken(gomock.Any(), "42", "card-token-1").
			Return(payment.Payment{OrderID: "42", State: payment.StateCompleted}, nil)

		// when
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout/42/token/charge", strings.NewReader(`{"token":"card-token-1"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"state":"completed"`)
	})
}
