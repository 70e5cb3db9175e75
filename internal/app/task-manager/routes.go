// Package taskmanager предоставляет маршруты для основного приложения.
package taskmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/task-manager/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/auth/register"
	profileread "github.com/magabrotheeeer/task-manager/internal/http/handlers/profile/read"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/task/create"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/task/list"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/task/read"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/task/remove"
	"github.com/magabrotheeeer/task-manager/internal/http/handlers/task/update"
	"github.com/magabrotheeeer/task-manager/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/task-manager/internal/services/auth"
	taskservice "github.com/magabrotheeeer/task-manager/internal/services/task"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, taskService *taskservice.TaskService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/profile", profileread.New(logger, authService).ServeHTTP)
			r.Post("/tasks", create.New(logger, taskService).ServeHTTP)
			r.Get("/tasks", list.New(logger, taskService).ServeHTTP)
			r.Get("/tasks/{id}", read.New(logger, taskService).ServeHTTP)
			r.Put("/tasks/{id}", update.New(logger, taskService).ServeHTTP)
			r.Delete("/tasks/{id}", remove.New(logger, taskService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
