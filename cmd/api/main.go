package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/madhangowdaa/mak-backend/docs" // swagger docs

	"github.com/madhangowdaa/mak-backend/internal/app"
	"github.com/madhangowdaa/mak-backend/internal/config"
	"github.com/madhangowdaa/mak-backend/internal/handler"
	"github.com/madhangowdaa/mak-backend/internal/live"
)

// @title MAK Catalog API
// @version 1.0
// @description Movies, series and HDTV catalog with Top 10, trending, upcoming and carousel curation.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey AdminSecret
// @in header
// @name X-Admin-Secret
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[api] config: %v", err)
	}
	defer app.SetupLogging(cfg.LogFile).Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("[api] error al iniciar: %v", err)
	}

	deps := handler.Deps{
		Movies:   a.Movies,
		Series:   a.Series,
		HDTV:     a.HDTV,
		Top10:    a.Top10,
		Trending: a.Trending,
		Upcoming: a.Upcoming,
		Carousel: a.Carousel,
		Browse:   a.Browse,
		Metadata: a.Metadata,
		Backup:   a.Backup,
		Auth:     a.Auth,
		Live:     live.NewHub(),

		CORSOrigins: cfg.CORSOrigins,
	}
	if a.Session != nil {
		deps.DB = a.Session
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[api] apagando")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] error en shutdown: %v", err)
	}
	a.Close(shutdownCtx)
}
