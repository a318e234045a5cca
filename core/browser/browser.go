package browser

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a browser.
type Opener interface {
	Open(url string) error
}

// SystemOpener opens URLs in the operating system's default browser.
type SystemOpener struct{}

// Open implements Opener.
func (SystemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// Notifier is told right before the browser is asked to open a page.
type Notifier interface {
	OpeningBrowser(url string)
}

// Launcher opens the served page once, after a delay, off the serving goroutine.
type Launcher struct {
	cfg      Config
	opener   Opener
	notifier Notifier
	logger   *zap.Logger
	once     sync.Once
}

// NewLauncher creates a launcher. A nil notifier is allowed.
func NewLauncher(cfg Config, opener Opener, notifier Notifier, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{
		cfg:      cfg,
		opener:   opener,
		notifier: notifier,
		logger:   logger,
	}
}

// Schedule starts the delayed launch and returns a channel closed when the
// worker is done. Only the first call on a Launcher starts a worker; later
// calls, and calls on a disabled launcher, return an already closed channel.
// Cancelling ctx before the delay elapses abandons the launch.
func (l *Launcher) Schedule(ctx context.Context, url string) <-chan struct{} {
	done := make(chan struct{})
	started := false

	if !l.cfg.Disabled {
		l.once.Do(func() {
			started = true
			go l.run(ctx, url, done)
		})
	}

	if !started {
		close(done)
	}
	return done
}

func (l *Launcher) run(ctx context.Context, url string, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(l.cfg.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		l.logger.Debug("Browser launch cancelled", zap.String("url", url))
		return
	case <-timer.C:
	}

	if l.notifier != nil {
		l.notifier.OpeningBrowser(url)
	}
	if err := l.opener.Open(url); err != nil {
		l.logger.Warn("Failed to open browser", zap.String("url", url), zap.Error(err))
	}
}
