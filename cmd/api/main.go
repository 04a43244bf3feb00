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

	"github.com/joho/godotenv"

	"github.com/zillion-dines/menu-generator/internal/extract"
	"github.com/zillion-dines/menu-generator/internal/render"
	"github.com/zillion-dines/menu-generator/internal/router"
	"github.com/zillion-dines/menu-generator/internal/session"
	"github.com/zillion-dines/menu-generator/internal/upload"
)

const (
	sessionTTL   = 2 * time.Hour
	sweepEvery   = 5 * time.Minute
	shutdownWait = 10 * time.Second
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// OPENAI_API_KEY is optional: users can supply their own
	// key per request, the env var is only the default.
	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Note: OPENAI_API_KEY not set, clients must provide their own key")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ───────────────────────── STATE ─────────────────────────
	store := session.NewStore()

	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go session.NewSweeper(store, sessionTTL, sweepEvery).Run(sweeperCtx)

	// ───────────────────────── SERVICES ─────────────────────────
	renderer := render.NewService()
	uploadService := upload.NewService(store, renderer)

	extractService := extract.NewService(store, func(apiKey string) extract.Client {
		return extract.NewOpenAIClient(apiKey)
	})

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(store, uploadService, extractService)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// ───────────────────────── SHUTDOWN ─────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}

	log.Println("Server stopped")
}
