package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/protocol7/claudebook/internal/api"
	"github.com/protocol7/claudebook/internal/config"
	"github.com/protocol7/claudebook/internal/handlers"
	"github.com/protocol7/claudebook/internal/services"
	"github.com/protocol7/claudebook/internal/store/sqlite"
)

func main() {
	log.Println("Starting claudebook server...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Open the Store
	messageStore, err := sqlite.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Unable to open database at %s: %v", cfg.DatabasePath, err)
	}
	defer messageStore.Close()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer migrateCancel()
	if err := messageStore.Migrate(migrateCtx); err != nil {
		log.Fatalf("FATAL: Failed to initialize database schema: %v", err)
	}
	log.Printf("Database initialized at: %s", cfg.DatabasePath)

	// 3. Initialize Dependencies (Service, Handlers)
	messageService := services.NewMessageService(messageStore)
	messageHandlers := handlers.NewMessageHandlers(messageService)

	// Ensure the static directory exists before serving from it.
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		log.Fatalf("FATAL: Failed to create static directory %s: %v", cfg.StaticDir, err)
	}

	// 4. Setup Router & Inject Dependencies
	router := api.NewRouter(api.RouterDependencies{
		MessageHandlers: messageHandlers,
		Config:          cfg,
	})

	// 5. Configure and Start HTTP Server
	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server running at http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v", server.Addr, err)
		}
	}()

	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
	}

	log.Println("Server shutdown complete.")
}
