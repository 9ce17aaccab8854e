package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/einvite/einvite-go/internal/config"
	"github.com/einvite/einvite-go/internal/handler"
	"github.com/einvite/einvite-go/internal/middleware"
	"github.com/einvite/einvite-go/internal/repository"
	"github.com/einvite/einvite-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// All stores are in-memory and volatile: every process start begins
	// with an empty guest list.
	userStore := repository.NewUserStore()
	rsvpStore := repository.NewRsvpStore()
	messageStore := repository.NewMessageStore()

	authService := service.NewAuthService(userStore, cfg.JWTSecret, cfg.JWTExpiry)
	rsvpService := service.NewRsvpService(rsvpStore, service.ParseGuestTotalPolicy(cfg.GuestTotalPolicy))
	messageService := service.NewMessageService(messageStore)

	authHandler := handler.NewAuthHandler(authService)
	rsvpHandler := handler.NewRsvpHandler(rsvpService)
	messageHandler := handler.NewMessageHandler(messageService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/rsvp", rsvpHandler.HandleSubmit)
		r.Post("/api/messages", messageHandler.HandleSubmit)
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Get("/api/rsvp", rsvpHandler.HandleList)
	r.Get("/api/rsvp/{email}", rsvpHandler.HandleFindByEmail)
	r.Get("/api/messages", messageHandler.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)
	})

	if cfg.StaticDir != "" {
		slog.Info("serving static frontend", "dir", cfg.StaticDir)
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
