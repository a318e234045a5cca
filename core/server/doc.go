// Package server runs the static file server for the test page.
//
// # Configuration
//
// The Config struct defines the bind host and port, the served root, the entry
// page that must exist before binding, and whether requests are logged verbosely.
//
// # Lifecycle
//
// An App moves from Unbound to Listening when Bind succeeds and to Terminated
// when the context given to Serve is cancelled. Bind reports ErrPortInUse when
// another listener owns the address. Termination closes the listener and does
// not wait for in-flight requests.
//
// # Usage
//
//	if err := server.CheckEntry(cfg.Server); err != nil {
//	    return err
//	}
//	app := server.New(cfg.Server, printer, logg, nil)
//	if err := app.Bind(); err != nil {
//	    return err
//	}
//	return app.Serve(ctx)
package server
