// Package read реализует HTTP-обработчик чтения профиля текущего пользователя.
//
// Handler извлекает идентификатор пользователя из контекста запроса,
// запрашивает у сервиса проекцию профиля и возвращает только имя и email.
// Хэш пароля за пределы хранилища не выходит.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/task-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-manager/internal/http/response"
	"github.com/magabrotheeeer/task-manager/internal/lib/sl"
	"github.com/magabrotheeeer/task-manager/internal/models"
	authservice "github.com/magabrotheeeer/task-manager/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Profile(ctx context.Context, userUID string) (*models.Profile, error)
}

// Handler обрабатывает запросы на чтение профиля.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис аутентификации
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает имя и email пользователя, определённого по токену.
// @Tags Profile
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.Profile "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь из токена не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	profile, err := h.service.Profile(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			log.Error("user from token no longer exists", slog.String("uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read profile"))
		return
	}

	log.Info("profile read", slog.String("uid", userUID))
	render.JSON(w, r, profile)
}
