package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"html-deployer/core/console"
	"html-deployer/core/middleware/accesslog"
	"html-deployer/core/middleware/cors"
	"html-deployer/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

var (
	// ErrPortInUse is returned by Bind when another listener owns the address.
	ErrPortInUse = errors.New("address already in use")
	// ErrNotBound is returned by Serve when Bind has not succeeded.
	ErrNotBound = errors.New("server is not bound")
)

// App owns the Fiber application and its listener for the lifetime of the process.
type App struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	ln     net.Listener
}

// New creates the application and registers the middleware chain and the
// static handler for cfg.Root. Nothing is bound yet.
func New(cfg Config, printer *console.Printer, logger *zap.Logger, now func() time.Time) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // The console prints its own banner
		ErrorHandler:          errorHandler,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())
	// 2. Cross-origin headers on every response
	app.Use(cors.New())
	// 3. Request lines
	app.Use(accesslog.New(accesslog.Config{
		Printer: printer,
		Logger:  logger,
		Verbose: cfg.Verbose,
		Now:     now,
	}))

	// 4. Static files, read from disk on every request so edits show up on reload
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(cfg.Root),
		Browse: true,
	}))

	return &App{cfg: cfg, app: app, logger: logger}
}

// Fiber exposes the underlying application, mostly for app.Test.
func (a *App) Fiber() *fiber.App {
	return a.app
}

// Bind opens the TCP listener on the configured address.
func (a *App) Bind() error {
	addr := a.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %w", ErrPortInUse, err)
		}
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	a.ln = ln
	a.logger.Debug("Listener bound", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or nil before Bind.
func (a *App) Addr() net.Addr {
	if a.ln == nil {
		return nil
	}
	return a.ln.Addr()
}

// URL returns the address of the entry page, using the bound port once Bind
// has succeeded so that port 0 resolves to the port actually chosen.
func (a *App) URL() string {
	cfg := a.cfg
	if tcp, ok := a.Addr().(*net.TCPAddr); ok {
		cfg.Port = tcp.Port
	}
	return cfg.URL()
}

// Serve dispatches requests until ctx is cancelled or the server fails.
// Cancellation closes the listener without draining in-flight requests.
func (a *App) Serve(ctx context.Context) error {
	if a.ln == nil {
		return ErrNotBound
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.app.Listener(a.ln)
	}()

	select {
	case <-ctx.Done():
		a.Close()
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, net.ErrClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	}
}

// Close releases the listener.
func (a *App) Close() {
	if a.ln == nil {
		return
	}
	if err := a.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		a.logger.Warn("Failed to close listener", zap.Error(err))
	}
}

// errorHandler writes the status of err as plain text. Headers set by the
// middleware chain are left untouched.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := http.StatusText(code)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
