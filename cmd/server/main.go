/*
main.go - HTTP server entry point

PURPOSE:
  Starts the loan engine API. Configuration comes from the environment
  (.env honored), with flags overriding individual values.

STARTUP SEQUENCE:
  1. Load configuration, apply flag overrides
  2. Initialize the SQLite calculation history
  3. Pick the schedule cache (Redis when configured, in-memory otherwise)
  4. Configure the router and start serving
  5. Graceful shutdown on SIGINT/SIGTERM (30s drain)

COMMAND-LINE FLAGS:
  -port    HTTP server port
  -db      SQLite database path (":memory:" for in-memory)
  -redis   Redis address for the schedule cache (empty = in-memory)

EXAMPLES:
  ./server -db="./data/loans.db"
  ./server -port=3000 -redis=localhost:6379
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/loan-engine/api"
	"github.com/warp/loan-engine/config"
	"github.com/warp/loan-engine/store/cache"
	"github.com/warp/loan-engine/store/sqlite"
)

func main() {
	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	redisAddr := flag.String("redis", cfg.RedisAddr, "Redis address for the schedule cache")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	var scheduleCache cache.ScheduleCache
	if *redisAddr != "" {
		redisCache := cache.NewRedis(*redisAddr, cfg.CacheTTL)
		defer redisCache.Close()
		scheduleCache = redisCache
		log.Printf("Using Redis schedule cache at %s", *redisAddr)
	} else {
		scheduleCache = cache.NewMemory()
	}

	handler := api.NewHandler(store, scheduleCache)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

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
