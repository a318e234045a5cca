package probe

import "time"

// Config holds configuration for the WebSocket endpoint the test page talks to.
type Config struct {
	// URL is the WebSocket endpoint announced in the banner.
	URL string `mapstructure:"url" default:"ws://localhost:8080/ws"`
	// SkipProbe disables the single reachability check after startup.
	SkipProbe bool `mapstructure:"skip_probe" default:"false"`
	// Timeout bounds the handshake of the check.
	Timeout time.Duration `mapstructure:"timeout" default:"2s"`
}
