package accesslog

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"html-deployer/core/console"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 9, 5, 7, 0, time.Local)
}

func setupTestApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.ErrTeapot
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/stream", func(c *fiber.Ctx) error {
		c.Response().SetBodyStream(strings.NewReader("hello"), 5)
		return nil
	})
	app.Get("/created", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestNew_ConsoleLines(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"Success", "/ok", "[09:05:07] ✓ GET /ok - 200\n"},
		{"FiberError", "/teapot", "[09:05:07] ✗ GET /teapot - 418\n"},
		{"PlainError", "/boom", "[09:05:07] ✗ GET /boom - 500\n"},
		{"NotFound", "/missing", "[09:05:07] ✗ GET /missing - 404\n"},
		{"Created", "/created", "[09:05:07] ✗ GET /created - 201\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := setupTestApp(Config{Printer: console.New(&buf), Now: fixedNow})

			_, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNew_FallbackToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := setupTestApp(Config{Logger: zap.New(core), Now: fixedNow})

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestNew_Verbose(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		var buf bytes.Buffer
		core, logs := observer.New(zapcore.DebugLevel)
		app := setupTestApp(Config{Printer: console.New(&buf), Logger: zap.New(core), Verbose: true})

		_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "✓ GET /ok - 200")
		entries := logs.FilterMessage("Request completed").All()
		require.Len(t, entries, 1)
		assert.EqualValues(t, 2, entries[0].ContextMap()["bytes"])
	})

	t.Run("StreamedBodySize", func(t *testing.T) {
		var buf bytes.Buffer
		core, logs := observer.New(zapcore.DebugLevel)
		app := setupTestApp(Config{Printer: console.New(&buf), Logger: zap.New(core), Verbose: true})

		resp, err := app.Test(httptest.NewRequest("GET", "/stream", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, "hello", string(body))
		entries := logs.FilterMessage("Request completed").All()
		require.Len(t, entries, 1)
		assert.EqualValues(t, 5, entries[0].ContextMap()["bytes"])
	})

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		core, logs := observer.New(zapcore.DebugLevel)
		app := setupTestApp(Config{Printer: console.New(&buf), Logger: zap.New(core)})

		_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		assert.Equal(t, 0, logs.Len())
	})
}
