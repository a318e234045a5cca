package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

const (
	glyphOK   = "✓"
	glyphFail = "✗"
	ruleWidth = 60
)

// Request describes one completed HTTP exchange.
type Request struct {
	Time   time.Time
	Method string
	Path   string
	Status int
}

// Complete reports whether the entry carries enough to be printed as a request line.
func (r Request) Complete() bool {
	return r.Method != "" && r.Status != 0
}

// Succeeded reports whether the status is rendered with the success glyph.
// The check is textual: any status whose decimal form contains "200" counts.
func (r Request) Succeeded() bool {
	return strings.Contains(strconv.Itoa(r.Status), "200")
}

// Line renders the request as "[HH:MM:SS] ✓ GET /path - 200" without colour.
func (r Request) Line() string {
	return r.format(r.glyph())
}

func (r Request) glyph() string {
	return lo.Ternary(r.Succeeded(), glyphOK, glyphFail)
}

func (r Request) format(glyph string) string {
	return fmt.Sprintf("[%s] %s %s %s - %d", r.Time.Format("15:04:05"), glyph, r.Method, r.Path, r.Status)
}

// Banner holds what the startup banner announces.
type Banner struct {
	Entry        string
	URL          string
	WebSocketURL string
}

// Printer writes the human-facing output of the server.
// It is safe for concurrent use.
type Printer struct {
	mu  sync.Mutex
	out io.Writer

	ok     *color.Color
	fail   *color.Color
	accent *color.Color
	warn   *color.Color
}

// New creates a Printer writing to out. Colours are only emitted when out is
// the process stdout and stdout is a terminal.
func New(out io.Writer) *Printer {
	p := &Printer{
		out:    out,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		accent: color.New(color.FgCyan, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	if out != os.Stdout || color.NoColor {
		for _, c := range []*color.Color{p.ok, p.fail, p.accent, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) printf(format string, a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, a...)
}

// Request prints one request line. It returns false, printing nothing, when
// the entry is incomplete so the caller can fall back to structured logging.
func (p *Printer) Request(r Request) bool {
	if !r.Complete() {
		return false
	}
	c := lo.Ternary(r.Succeeded(), p.ok, p.fail)
	p.println(r.format(c.Sprint(r.glyph())))
	return true
}

// Rule prints a horizontal separator.
func (p *Printer) Rule() {
	p.println(strings.Repeat("=", ruleWidth))
}

// Banner prints the startup banner.
func (p *Printer) Banner(b Banner) {
	p.println(p.accent.Sprint("🚀 Starting HTTP server..."))
	p.printf("📄 Serving %s at: %s\n", b.Entry, b.URL)
	if b.WebSocketURL != "" {
		p.printf("🔌 WebSocket will connect to: %s\n", b.WebSocketURL)
	}
	p.println("⏹️  Press Ctrl+C to stop the server")
	p.Rule()
}

// Instructions prints the manual test walkthrough for the served page.
func (p *Printer) Instructions() {
	p.println()
	p.println("📋 WebSocket Test Instructions:")
	p.println("   1. Click 'Connect' to establish WebSocket connection")
	p.println("   2. Use 'Send Ping' to test basic connectivity")
	p.println("   3. Use 'Calculate Fee' to test EOS fee calculation")
	p.println("   4. Use 'Test Rate Limit' to verify 20 requests/minute limit")
	p.println("   5. Watch this terminal for formatted message logs")
	p.println()
	p.println("💡 Tips:")
	p.println("   - Messages are logged here in readable format")
	p.println("   - Sent messages show as [SENT] with ➡️")
	p.println("   - Received messages show as [RECV] with ⬅️")
	p.println("   - Errors and rate limits are highlighted")
	p.println()
}

// Ready prints the line announcing the server accepts connections.
func (p *Printer) Ready() {
	p.println(p.accent.Sprint("🎯 Server is ready! Waiting for connections..."))
	p.Rule()
}

// OpeningBrowser announces the browser launch.
func (p *Printer) OpeningBrowser(url string) {
	p.printf("🌐 Opening browser to: %s\n", url)
}

// Probe reports whether the WebSocket endpoint answered.
func (p *Printer) Probe(url string, err error) {
	if err == nil {
		p.printf("%s WebSocket endpoint reachable: %s\n", p.ok.Sprint("🔌"), url)
		return
	}
	p.printf("%s WebSocket endpoint not reachable yet: %s (%v)\n", p.warn.Sprint("⚠️ "), url, err)
}

// Shutdown prints the interrupt message.
func (p *Printer) Shutdown() {
	p.println("\n\nShutting down server...")
}

// EntryMissing prints the precondition failure for the entry page. The
// directory is named unless it is the working directory.
func (p *Printer) EntryMissing(entry, root string) {
	if root == "" || root == "." {
		p.printf("%s %s not found in current directory\n", p.fail.Sprint("Error:"), entry)
		p.printf("Please run this command from the directory containing %s\n", entry)
		return
	}
	p.printf("%s %s not found in %s\n", p.fail.Sprint("Error:"), entry, root)
	p.printf("Point --root at the directory containing %s\n", entry)
}

// PortInUse prints the bind failure together with the next port to try.
func (p *Printer) PortInUse(program string, port int) {
	p.printf("%s Port %d is already in use\n", p.fail.Sprint("Error:"), port)
	p.printf("Try a different port: %s --port %d\n", program, port+1)
}

// StartError prints any other startup failure.
func (p *Printer) StartError(err error) {
	p.printf("%s %v\n", p.fail.Sprint("Error starting server:"), err)
}
