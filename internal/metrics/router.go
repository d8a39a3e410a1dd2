package metrics

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// ConfigureRouter exposes gatherer on /metrics. A nil gatherer means the default registry.
func ConfigureRouter(handler *echo.Echo, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	handler.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	handler.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
