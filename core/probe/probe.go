// Package probe checks once whether the WebSocket service the test page
// connects to is accepting handshakes. The result is informational only.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

const defaultTimeout = 2 * time.Second

// Reporter receives the outcome of a probe.
type Reporter interface {
	Probe(url string, err error)
}

// Dial performs one WebSocket handshake against cfg.URL and closes the
// connection right away.
func Dial(ctx context.Context, cfg Config) error {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, resp, err := dialer.DialContext(ctx, cfg.URL, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("handshake rejected with status %d: %w", resp.StatusCode, err)
		}
		return err
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return conn.Close()
}

// Run probes in the background unless skipped and reports the result. The
// returned channel is closed once reporting is done.
func Run(ctx context.Context, cfg Config, r Reporter) <-chan struct{} {
	done := make(chan struct{})
	if cfg.SkipProbe || cfg.URL == "" {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		err := Dial(ctx, cfg)
		if ctx.Err() != nil {
			return
		}
		r.Probe(cfg.URL, err)
	}()
	return done
}
