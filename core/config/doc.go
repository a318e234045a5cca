// Package config provides configuration management for the deployer.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and command-line flags. Defaults live in the `default` struct
// tags of each section and are registered by reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: bind host and port, served root, entry page, verbose request logging
//   - Browser: automatic launch switch and delay
//   - WebSocket: endpoint announced to the user and the optional reachability probe
//   - Log: Logging level and format
//
// # Precedence
//
// Explicitly set flags win over environment variables (SERVER_PORT, BROWSER_DISABLED, ...),
// which win over the .env file, which wins over the tag defaults.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", config.FlagBinding{Key: "server.port", Flag: cmd.Flags().Lookup("port")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
