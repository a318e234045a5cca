package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"html-deployer/core/browser"
	"html-deployer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options carries the process resources the command talks to.
type Options struct {
	// Out receives the console output.
	Out io.Writer
	// Opener launches the browser.
	Opener browser.Opener
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd(Options{Out: os.Stdout, Opener: browser.SystemOpener{}})

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html-deployer",
		Short: "Serve the WebSocket test page locally",
		Long: `html-deployer serves the current directory over HTTP so that websocket-test.html
can be loaded in a browser and used against a running WebSocket service.
Every response carries permissive CORS headers and every request is logged.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cmd, opts)
		},
	}

	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.Out)
	// Usage is silenced for runtime failures but still wanted for bad flags.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(c.UsageString())
		return err
	})

	flags := cmd.Flags()
	flags.Int("port", 3000, "Port to serve on")
	flags.String("host", "localhost", "Host to bind to")
	flags.Bool("no-browser", false, "Do not auto-open browser")
	flags.Bool("verbose", false, "Enable verbose HTTP request logging")
	flags.String("root", ".", "Directory to serve")
	flags.String("ws-url", "ws://localhost:8080/ws", "WebSocket endpoint the test page connects to")
	flags.Bool("no-probe", false, "Do not check whether the WebSocket endpoint is reachable")

	return cmd
}

// reportedError marks an error the console has already explained to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var re *reportedError
		if errors.As(err, &re) {
			os.Exit(1)
		}

		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
