package app

import (
	"paytrailgw/pkg/logger"
	"paytrailgw/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}
