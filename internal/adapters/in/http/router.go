package http

import (
	"context"
	"fmt"
	"net/http"

	"sales/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with middleware, health, metrics, the API
// docs and the order API. It fails when the embedded contract is invalid.
func NewEcho(
	server *Server,
	serverMetrics *metrics.ServerMetrics,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if serverMetrics != nil {
		e.Use(Metrics(serverMetrics))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", OpenAPISpec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	server.RegisterRoutes(e, validator)
	return e, nil
}
