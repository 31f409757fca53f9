package main

import (
	"fmt"
	"log"
	"os"

	internalcli "github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/cli"
	"github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/config"
	"github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/handlers"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

const serviceName = "intelligence"

// buildServerDependencies creates all dependencies needed for the server
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	// Load service configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return deps, fmt.Errorf("failed to load configuration: %w", err)
	}
	deps.Config = cfg

	// Create handlers with the loaded configuration
	deps.HealthHandler = handlers.NewHealthHandler(cfg.Environment)
	deps.StatusHandler = handlers.NewStatusHandler(serviceName, version, cfg)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the intelligence service HTTP server",
		Action: func(c *cli.Context) error {
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    serviceName,
		Usage:   "Intelligence service management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
