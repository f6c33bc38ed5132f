package http

import (
	"github.com/Calebyte11/Boqbox-landing/internal/adapter/http/middleware"
	"github.com/Calebyte11/Boqbox-landing/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(fh *FlowHandler, ph *PaymentHandler, ch *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/flow", fh.StartFlow)
		v1.GET("/flow/:id", fh.GetFlow)
		v1.PUT("/flow/:id/sender", fh.SubmitSender)
		v1.PUT("/flow/:id/recipient", fh.SubmitRecipient)
		v1.POST("/flow/:id/items", fh.AddItem)
		v1.PUT("/flow/:id/items", fh.SetItems)
		v1.POST("/flow/:id/items/submit", fh.SubmitItems)
		v1.PUT("/flow/:id/vendor", fh.SubmitVendor)
		v1.POST("/flow/:id/back", fh.Back)
		v1.POST("/flow/:id/reset", fh.Reset)
		v1.GET("/flow/:id/notifications", fh.Notifications)

		v1.POST("/flow/:id/payment", ph.Submit)
		v1.GET("/payment/callback", ph.Callback)

		v1.GET("/items", ch.Items)
		v1.GET("/vendors", ch.Vendors)
	}

	return r
}
