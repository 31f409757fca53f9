package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/config"
	"github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/middleware"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	Config        *config.Config
	HealthHandler http.Handler
	StatusHandler http.Handler
}

// RunServe starts the intelligence service HTTP server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Set up routes
	mux := http.NewServeMux()
	mux.Handle("/healthz", deps.HealthHandler)
	mux.Handle("/api/status", deps.StatusHandler)

	// Create listener on the configured port
	listener, err := net.Listen("tcp", deps.Config.Addr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server with request-ID tagging
	server := &http.Server{
		Handler: middleware.RequestID(mux),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s (environment: %s)", listener.Addr().String(), deps.Config.Environment)
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown, falling back to a forced close
	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
