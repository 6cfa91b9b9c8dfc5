package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/apperror"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})
}

func TestRequestID_RejectsOversizedHeader(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFromCtx(c))
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	resp, _ := app.Test(req)

	rid := resp.Header.Get(RequestIDHeader)
	assert.Len(t, rid, 36)
	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, rid, buf.String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_ResolvesErrorBeforeLogging(t *testing.T) {
	var buf bytes.Buffer
	handled := 0
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			handled++
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, 1, handled)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, float64(fiber.StatusTeapot), logData["status"])
	assert.Equal(t, "http_request", logData["msg"])
}

func TestBodyParser(t *testing.T) {
	var parseErr error
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			parseErr = err
			return c.SendStatus(fiber.StatusBadRequest)
		},
	})
	app.Use(BodyParser())
	app.All("/echo", func(c *fiber.Ctx) error {
		return c.JSON(Body(c))
	})

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
		wantParse   bool
	}{
		{name: "json object", method: "POST", contentType: "application/json", body: `{"title":"Buy milk"}`, wantStatus: 200, wantBody: `{"title":"Buy milk"}`},
		{name: "json with charset", method: "PATCH", contentType: "application/json; charset=utf-8", body: `{"a":1}`, wantStatus: 200, wantBody: `{"a":1}`},
		{name: "empty body", method: "POST", contentType: "application/json", body: "", wantStatus: 200, wantBody: `{}`},
		{name: "non json content type ignored", method: "POST", contentType: "text/plain", body: `not json`, wantStatus: 200, wantBody: `{}`},
		{name: "get is never parsed", method: "GET", contentType: "application/json", body: `{oops`, wantStatus: 200, wantBody: `{}`},
		{name: "malformed json", method: "POST", contentType: "application/json", body: `{"title":`, wantStatus: 400, wantParse: true},
		{name: "array is rejected", method: "PUT", contentType: "application/json", body: `["a"]`, wantStatus: 400, wantParse: true},
		{name: "null is rejected", method: "POST", contentType: "application/json", body: `null`, wantStatus: 400, wantParse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseErr = nil
			req := httptest.NewRequest(tt.method, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantParse {
				var pe *apperror.ParseError
				assert.ErrorAs(t, parseErr, &pe)
				return
			}
			buf := new(bytes.Buffer)
			buf.ReadFrom(resp.Body)
			assert.JSONEq(t, tt.wantBody, buf.String())
		})
	}
}
