package console_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"html-deployer/core/console"

	"github.com/stretchr/testify/assert"
)

var at = time.Date(2026, 1, 2, 14, 3, 22, 0, time.Local)

func TestRequest_Line(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"OK", 200, "[14:03:22] ✓ GET /websocket-test.html - 200"},
		{"NotFound", 404, "[14:03:22] ✗ GET /websocket-test.html - 404"},
		{"NotModified", 304, "[14:03:22] ✗ GET /websocket-test.html - 304"},
		{"ContainsTwoHundred", 1200, "[14:03:22] ✓ GET /websocket-test.html - 1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := console.Request{Time: at, Method: "GET", Path: "/websocket-test.html", Status: tt.status}
			assert.Equal(t, tt.want, r.Line())
		})
	}
}

func TestPrinter_Request(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		var buf bytes.Buffer
		p := console.New(&buf)

		ok := p.Request(console.Request{Time: at, Method: "GET", Path: "/missing", Status: 404})

		assert.True(t, ok)
		assert.Equal(t, "[14:03:22] ✗ GET /missing - 404\n", buf.String())
	})

	t.Run("Incomplete", func(t *testing.T) {
		var buf bytes.Buffer
		p := console.New(&buf)

		assert.False(t, p.Request(console.Request{Time: at, Path: "/"}))
		assert.False(t, p.Request(console.Request{Time: at, Method: "GET", Path: "/"}))
		assert.Empty(t, buf.String())
	})

	t.Run("Concurrent", func(t *testing.T) {
		var buf bytes.Buffer
		p := console.New(&buf)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Request(console.Request{Time: at, Method: "GET", Path: "/", Status: 200})
			}()
		}
		wg.Wait()

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 20)
		for _, l := range lines {
			assert.Equal(t, "[14:03:22] ✓ GET / - 200", l)
		}
	})
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	p := console.New(&buf)

	p.Banner(console.Banner{
		Entry:        "websocket-test.html",
		URL:          "http://localhost:3000/websocket-test.html",
		WebSocketURL: "ws://localhost:8080/ws",
	})

	out := buf.String()
	assert.Contains(t, out, "Starting HTTP server...")
	assert.Contains(t, out, "Serving websocket-test.html at: http://localhost:3000/websocket-test.html")
	assert.Contains(t, out, "WebSocket will connect to: ws://localhost:8080/ws")
	assert.Contains(t, out, strings.Repeat("=", 60))
}

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *console.Printer)
		want  []string
	}{
		{
			"EntryMissing",
			func(p *console.Printer) { p.EntryMissing("websocket-test.html", ".") },
			[]string{"Error: websocket-test.html not found in current directory"},
		},
		{
			"EntryMissingEmptyRoot",
			func(p *console.Printer) { p.EntryMissing("websocket-test.html", "") },
			[]string{"Error: websocket-test.html not found in current directory"},
		},
		{
			"EntryMissingOtherRoot",
			func(p *console.Printer) { p.EntryMissing("websocket-test.html", "/srv/pages") },
			[]string{"Error: websocket-test.html not found in /srv/pages", "Point --root at the directory containing websocket-test.html"},
		},
		{
			"PortInUse",
			func(p *console.Printer) { p.PortInUse("html-deployer", 3000) },
			[]string{"Error: Port 3000 is already in use", "Try a different port: html-deployer --port 3001"},
		},
		{
			"StartError",
			func(p *console.Printer) { p.StartError(errors.New("boom")) },
			[]string{"Error starting server: boom"},
		},
		{
			"Shutdown",
			func(p *console.Printer) { p.Shutdown() },
			[]string{"Shutting down server..."},
		},
		{
			"OpeningBrowser",
			func(p *console.Printer) { p.OpeningBrowser("http://localhost:3000/websocket-test.html") },
			[]string{"🌐 Opening browser to: http://localhost:3000/websocket-test.html"},
		},
		{
			"ProbeOK",
			func(p *console.Printer) { p.Probe("ws://localhost:8080/ws", nil) },
			[]string{"WebSocket endpoint reachable: ws://localhost:8080/ws"},
		},
		{
			"ProbeFailed",
			func(p *console.Printer) { p.Probe("ws://localhost:8080/ws", errors.New("refused")) },
			[]string{"not reachable yet: ws://localhost:8080/ws (refused)"},
		},
		{
			"Instructions",
			func(p *console.Printer) { p.Instructions() },
			[]string{"WebSocket Test Instructions:", "1. Click 'Connect'", "5. Watch this terminal"},
		},
		{
			"Ready",
			func(p *console.Printer) { p.Ready() },
			[]string{"Server is ready! Waiting for connections..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(console.New(&buf))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}
