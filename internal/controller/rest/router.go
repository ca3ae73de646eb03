package rest

import (
	"paytrailgw/internal/controller/rest/handlers"
	"paytrailgw/pkg/health"
	"paytrailgw/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	checkout       handlers.CheckoutHandler
	callback       handlers.CallbackHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Merchant operations
	engine.POST("/checkout/:order_id", r.checkout.Create)
	engine.GET("/checkout/:order_id/legacy-form", r.checkout.LegacyForm)
	engine.POST("/checkout/:order_id/refund", r.checkout.Refund)
	engine.GET("/orders/:order_id/events", r.callback.Events)

	engine.POST("/tokenization/:tokenization_id", r.checkout.ResolveToken)
	engine.POST("/checkout/:order_id/token/charge", r.checkout.Charge)
	engine.POST("/checkout/:order_id/token/authorize", r.checkout.Authorize)
	engine.POST("/checkout/:order_id/token/commit", r.checkout.Commit)
	engine.POST("/checkout/:order_id/token/revert", r.checkout.Revert)

	// Provider callbacks
	engine.GET("/payments/return", r.callback.Return)
	engine.GET("/payments/cancel", r.callback.Cancel)
	engine.GET("/payments/notify", r.callback.Notify)
	engine.GET("/payments/legacy/notify", r.callback.LegacyNotify)
}

func NewRouter(
	checkout handlers.CheckoutHandler,
	callback handlers.CallbackHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		checkout:       checkout,
		callback:       callback,
		healthRegistry: healthRegistry,
	}
}
