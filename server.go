package gomischedule

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/gomi-schedule/config"
)

var (
	server *http.Server
)

// NewHandler builds the HTTP routes for a lookup.
func NewHandler(l *Lookup, samplesDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(l))
	mux.HandleFunc("/api/schedule", handleSchedule(l))
	if samplesDir != "" {
		if fi, err := os.Stat(samplesDir); err == nil && fi.IsDir() {
			mux.Handle("/data/samples/", http.StripPrefix("/data/samples/", http.FileServer(http.Dir(samplesDir))))
		}
	}
	return mux
}

// StartServer serves the API on cfg.Server.Port in the background.
func StartServer(cfg config.AppConfig) {
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           NewHandler(NewLookupFromConfig(cfg), cfg.Server.SamplesDir),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      lookupTimeout(cfg) + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s (catalog %s)", addr, cfg.Catalog.SearchURL)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

// lookupTimeout is the worst case for one search plus one download.
func lookupTimeout(cfg config.AppConfig) time.Duration {
	return time.Duration(cfg.Catalog.TimeoutMS+cfg.Download.TimeoutMS) * time.Millisecond
}
