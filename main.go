// Main entry point of the movie-memo application. It loads configuration,
// opens the database pool, applies migrations, wires the services and
// handlers together, sets up the HTTP router and middleware, and starts the
// server with graceful shutdown.
//
// @title Movie Memo API
// @version 1.0
// @description API for recording which movies users have seen.
// @BasePath /
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/config"
	"github.com/user/movie-memo-go/db"
	_ "github.com/user/movie-memo-go/docs" // Generated Swagger docs
	"github.com/user/movie-memo-go/movies"
	"github.com/user/movie-memo-go/usermovies"
	"github.com/user/movie-memo-go/users"
)

func main() {
	// .env is a development convenience; production sets the variables
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DBPool)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DBPool, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual constructor injection: services get the pool, handlers get the
	// services.
	userService := users.NewService(pool)
	userHandlers := users.NewHandlers(userService)

	userMovieService := usermovies.NewService(pool)
	userMovieHandlers := usermovies.NewHandlers(userMovieService)

	movieClient := movies.NewClient(cfg.MovieAPI)
	movieHandlers := movies.NewHandlers(movieClient)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers with the standard error payload instead of
	// an empty 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewStorageFailure("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/movie", movieHandlers.HandleSearch())

	r.Route("/user", func(r chi.Router) {
		r.Post("/", userHandlers.HandleCreateUser())
		r.Get("/", userHandlers.HandleListUsers())

		r.Route("/{userID}/movies", func(r chi.Router) {
			r.Get("/", userMovieHandlers.HandleListByUser())
			r.Post("/", userMovieHandlers.HandleCreateForUser())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// The server runs in its own goroutine so main can wait on shutdown
	// signals.
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware; the feature
// packages use users.WriteError, which needs the request for logging.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
