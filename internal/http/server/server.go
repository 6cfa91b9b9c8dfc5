package server

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"todoapi/docs"
	"todoapi/internal/http/handler"
	"todoapi/internal/http/middleware"
	"todoapi/internal/service"
)

// Options carries everything the HTTP shell needs. Service and Pinger are required.
type Options struct {
	Service service.TodoService
	Pinger  handler.Pinger
	Logger  *zap.Logger
	// Registry receives the HTTP metrics and backs /metrics. A fresh one is used when nil.
	Registry *prometheus.Registry
	// APIPrefix mounts the todo routes under a group, e.g. "/api/v1".
	APIPrefix string
	Tracing   bool
}

// New assembles the Fiber app: tracing and request id, metrics, request log,
// panic recovery, body parsing, then the routes. Errors surfacing from any
// stage end in handler.ErrorHandler.
func New(opts Options) (*fiber.App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	if opts.Tracing {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.RequestID())

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}
	app.Use(prom.Handler())
	app.Get(middleware.MetricsPath, middleware.MetricsHandler(reg))

	app.Use(middleware.Logger(logger))
	app.Use(recover.New())
	app.Use(middleware.BodyParser())

	handler.RegisterProbes(app, opts.Pinger)

	prefix := strings.TrimRight(opts.APIPrefix, "/")
	basePath := "/"
	if prefix != "" {
		basePath = prefix
	}
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		docs.SwaggerInfo.BasePath = basePath

		return swagger.HandlerDefault(c)
	})

	if prefix == "" {
		handler.RegisterRoutes(app, opts.Service)
	} else {
		handler.RegisterRoutes(app.Group(prefix), opts.Service)
	}

	return app, nil
}
