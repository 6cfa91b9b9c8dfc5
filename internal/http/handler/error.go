package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"todoapi/internal/apperror"
	"todoapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Error     string `json:"error" example:"Server error"`
	Code      string `json:"code" example:"INTERNAL_ERROR"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "TITLE_REQUIRED", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		Code:      code,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

func writeValidationError(c *fiber.Ctx, verr *apperror.ValidationError) error {
	return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", verr.Message)
}

// ErrorHandler returns the terminal Fiber error handler.
// Client errors are answered with a safe message; everything else is logged
// with its cause and answered with a generic 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			parseErr *apperror.ParseError
			valErr   *apperror.ValidationError
			fiberErr *fiber.Error
		)

		switch {
		case errors.As(err, &parseErr):
			logger.Warn("request_body_rejected",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid JSON body")
		case errors.As(err, &valErr):
			return writeValidationError(c, valErr)
		case errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError:
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				return writeError(c, fiberErr.Code, "NOT_FOUND", "Resource not found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fiberErr.Code, "METHOD_NOT_ALLOWED", "Method not allowed")
			default:
				return writeError(c, fiberErr.Code, "BAD_REQUEST", "Bad request")
			}
		}

		fields := []zap.Field{
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		}
		var storageErr *apperror.StorageError
		if errors.As(err, &storageErr) {
			fields = append(fields, zap.String("op", storageErr.Op))
		}
		logger.Error("request_failed", fields...)

		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Server error")
	}
}
