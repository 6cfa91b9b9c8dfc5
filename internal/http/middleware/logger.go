package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todoapi/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one JSON line.
// Fields: request_id, method, path, status, latency (ms), trace_id when a span is active.
//
// An error returned further down the chain is resolved through the app's
// ErrorHandler before logging so the recorded status is the one sent.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		rid := RequestIDFromCtx(c)
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		log.Info("http_request", fields...)

		return nil
	}
}

// LoggerWithWriter is Logger with a dedicated JSON sink, mostly for tests.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.NewWithWriter(w, loc, zapcore.InfoLevel))
}
