package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/titans986/waiting-list-site/internal/config"
	"github.com/titans986/waiting-list-site/internal/logging"
	"github.com/titans986/waiting-list-site/internal/server"
	"github.com/titans986/waiting-list-site/internal/waitlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	// ── Waitlist store ───────────────────────────────────────
	// Signups are only logged until a mailing-list provider is wired in.
	store := waitlist.NewLogStore()

	// ── Router ───────────────────────────────────────────────
	router, err := server.NewRouter(cfg, logger, store)
	if err != nil {
		logger.Fatalf("router: %v", err)
	}

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Printf("Waitlist site listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
