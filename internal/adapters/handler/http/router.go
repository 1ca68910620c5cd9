package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	HabitHandler   *HabitHandler
	LogHandler     *HabitLogHandler
	AuthMiddleware *AuthMiddleware
	GoogleEnabled  bool
}

func NewHandler(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Habit Tracker API"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)

		if cfg.GoogleEnabled {
			r.Get("/google", cfg.AuthHandler.GoogleLogin)
			r.Get("/google/callback", cfg.AuthHandler.GoogleCallback)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cfg.AuthMiddleware.RequireAuth)

		r.Get("/me", cfg.UserHandler.GetMe)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", cfg.UserHandler.GetAll)
			r.Get("/{id}", cfg.UserHandler.GetByID)
			r.Delete("/{id}", cfg.UserHandler.Delete)
		})

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", cfg.HabitHandler.Create)
			r.Get("/", cfg.HabitHandler.List)
			r.Get("/{id}", cfg.HabitHandler.Get)
			r.Put("/{id}", cfg.HabitHandler.Update)
			r.Delete("/{id}", cfg.HabitHandler.Delete)
			r.Get("/{id}/stats", cfg.HabitHandler.Stats)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Post("/", cfg.LogHandler.Create)
			r.Get("/habit/{habitId}", cfg.LogHandler.ListByHabit)
			r.Get("/{id}", cfg.LogHandler.Get)
			r.Put("/{id}", cfg.LogHandler.Update)
			r.Delete("/{id}", cfg.LogHandler.Delete)
		})
	})

	return r
}
