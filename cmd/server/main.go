/*
main.go - API server entry point

STARTUP ORDER:
  1. Parse flags and load the YAML config (flags win)
  2. Load the yearly limits table (built-in, or an external document)
  3. Open the SQLite store
  4. Build the router and serve until SIGINT/SIGTERM, then drain
*/
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/foundry/compliance-engine/api"
	"github.com/foundry/compliance-engine/config"
	"github.com/foundry/compliance-engine/engine"
	"github.com/foundry/compliance-engine/factory"
	"github.com/foundry/compliance-engine/limits"
	"github.com/foundry/compliance-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	table, err := loadLimits(cfg.LimitsDocument)
	if err != nil {
		log.Fatalf("load limits table: %v", err)
	}

	if cfg.DatabasePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
			log.Fatalf("create database directory: %v", err)
		}
	}
	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	handler := api.NewHandler(store, engine.NewCalculator(table))
	server := api.NewServer(cfg.Addr, api.NewRouter(handler, cfg.CORSAllowedOrigins))

	go func() {
		log.Printf("compliance engine listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func loadLimits(path string) (limits.Table, error) {
	if path == "" {
		return factory.DefaultLimitsTable()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return limits.Table{}, err
	}
	return factory.ParseLimitsTable(raw)
}
