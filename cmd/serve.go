package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"html-deployer/core/browser"
	"html-deployer/core/config"
	"html-deployer/core/console"
	"html-deployer/core/logger"
	"html-deployer/core/probe"
	"html-deployer/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func flagBindings(cmd *cobra.Command) []config.FlagBinding {
	flags := cmd.Flags()
	return []config.FlagBinding{
		{Key: "server.port", Flag: flags.Lookup("port")},
		{Key: "server.host", Flag: flags.Lookup("host")},
		{Key: "server.root", Flag: flags.Lookup("root")},
		{Key: "server.verbose", Flag: flags.Lookup("verbose")},
		{Key: "browser.disabled", Flag: flags.Lookup("no-browser")},
		{Key: "websocket.url", Flag: flags.Lookup("ws-url")},
		{Key: "websocket.skip_probe", Flag: flags.Lookup("no-probe")},
	}
}

func runServer(ctx context.Context, cmd *cobra.Command, opts Options) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", flagBindings(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	// 2. Initialize Logger
	logCfg := cfg.Log
	if cfg.Server.Verbose {
		logCfg.Level = "debug"
	}
	logg, err := logger.New(&logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	printer := console.New(opts.Out)

	// 3. Entry page must exist before anything binds
	if err := server.CheckEntry(cfg.Server); err != nil {
		if errors.Is(err, server.ErrEntryMissing) {
			printer.EntryMissing(cfg.Server.Entry, cfg.Server.Root)
		} else {
			printer.StartError(err)
		}
		return reported(err)
	}

	// 4. Bind
	app := server.New(cfg.Server, printer, logg, nil)
	if err := app.Bind(); err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			printer.PortInUse(cmd.Root().Name(), cfg.Server.Port)
		} else {
			printer.StartError(err)
		}
		return reported(err)
	}
	defer app.Close()

	// 5. Interrupt handling
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := app.URL()
	printer.Banner(console.Banner{
		Entry:        cfg.Server.Entry,
		URL:          url,
		WebSocketURL: cfg.WebSocket.URL,
	})

	// 6. Background helpers
	browser.NewLauncher(cfg.Browser, opts.Opener, printer, logg).Schedule(ctx, url)
	probe.Run(ctx, cfg.WebSocket, printer)

	printer.Instructions()
	printer.Ready()
	logg.Debug("Serving", zap.String("addr", app.Addr().String()), zap.String("root", cfg.Server.Root))

	// 7. Serve until interrupted
	if err := app.Serve(ctx); err != nil {
		printer.StartError(err)
		return reported(err)
	}

	printer.Shutdown()
	return nil
}
