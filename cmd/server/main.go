package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/config"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/keywords"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/metrics"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/modifier"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/server"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/suggest"
)

func main() {
	cfg := config.Load()

	table, err := modifier.LoadTable(cfg.ModifiersFile)
	if err != nil {
		log.Fatalf("Failed to load modifier table: %v", err)
	}

	metrics.Init()

	client := suggest.NewClient(cfg)
	svc := keywords.NewService(client, table)
	store := keywords.NewStore(keywords.DefaultStoreCap)

	srv := server.New(cfg)
	srv.RegisterRoutes(svc, store)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
