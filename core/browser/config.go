package browser

import "time"

// Config holds configuration for the automatic browser launch.
type Config struct {
	// Disabled suppresses the launch.
	Disabled bool `mapstructure:"disabled" default:"false"`
	// Delay is the wait between binding and opening the page.
	Delay time.Duration `mapstructure:"delay" default:"1.5s"`
}
