package server

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultEntry is the test page the server exists to deliver.
const DefaultEntry = "websocket-test.html"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the bind address.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"3000"`
	// Root is the directory served as static content.
	Root string `mapstructure:"root" default:"."`
	// Entry is the page that must exist in Root before the server binds.
	Entry string `mapstructure:"entry" default:"websocket-test.html"`
	// Verbose adds a structured log record for every request.
	Verbose bool `mapstructure:"verbose" default:"false"`
}

// Addr returns the host:port pair to bind.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the address of the entry page as seen from a browser.
func (c Config) URL() string {
	return fmt.Sprintf("http://%s/%s", c.Addr(), c.Entry)
}

// Validate checks the values that cannot be caught by flag parsing.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if c.Entry == "" {
		return fmt.Errorf("entry file name must not be empty")
	}
	return nil
}
