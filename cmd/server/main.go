/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Is It Worth The Time? server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment configuration
  2. Parse command-line flags (flags win over environment)
  3. Create API handler with grid defaults
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr    Listen address (overrides WORTH_ADDRESS when set)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with defaults
  ./server

  # Run on a different port
  ./server -addr=:3000

  # Default grid for a different salary band
  WORTH_DEFAULT_SALARY=250000 ./server

ENVIRONMENT:
  See the config package for all WORTH_* variables.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Environment configuration
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swkovma/isitworththetime/api"
	"github.com/swkovma/isitworththetime/config"
	"github.com/swkovma/isitworththetime/factory"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	addr := flag.String("addr", "", "listen address (overrides WORTH_ADDRESS)")
	flag.Parse()

	listen := cfg.Service.Address
	if *addr != "" {
		listen = *addr
	}

	// Initialize handler with grid defaults from the environment
	handler := api.NewHandler(factory.GridConfigJSON{
		Salary: cfg.Grid.DefaultSalary,
		Period: cfg.Grid.DefaultPeriod,
		Mode:   cfg.Grid.DefaultMode,
		Symbol: cfg.Grid.CurrencySymbol,
	})

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost%s", listen)
		log.Printf("📊 API available at http://localhost%s/api", listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
