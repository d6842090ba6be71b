package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/vaughan-dsouza/GoAccounts/internal/db"
	"github.com/vaughan-dsouza/GoAccounts/internal/handlers"
	"github.com/vaughan-dsouza/GoAccounts/internal/logger"
	"github.com/vaughan-dsouza/GoAccounts/internal/middleware"
	"github.com/vaughan-dsouza/GoAccounts/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// Missing .env is fine in production, env comes from the process.
	_ = godotenv.Load()

	log := logger.New()

	port := getenv("PORT", "4000")
	databaseURL := getenv("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	maxOpen, _ := strconv.Atoi(getenv("DB_MAX_OPEN", "25"))
	maxIdle, _ := strconv.Atoi(getenv("DB_MAX_IDLE", "25"))
	lifetime, _ := strconv.Atoi(getenv("DB_MAX_LIFETIME", "300")) // seconds

	dbConn, err := db.Connect(databaseURL, db.PoolConfig{
		MaxOpen:     maxOpen,
		MaxIdle:     maxIdle,
		MaxLifetime: time.Duration(lifetime) * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer dbConn.Close()

	h := handlers.NewHandler(dbConn, log)
	r := newRouter(h, log)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func newRouter(h *handlers.Handler, log zerolog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.Failure(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/accounts", h.Accounts.List)
	r.Post("/accounts/create", h.Accounts.Create)
	r.Post("/accounts/update", h.Accounts.Update)
	r.Post("/accounts/delete", h.Accounts.Delete)
	r.Get("/employees", h.Accounts.Employees)

	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)
	r.Post("/signup", h.Auth.SignUp)

	return r
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
