// Package read реализует HTTP-обработчик для получения конкретной задачи по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения задачи
// текущего пользователя и возвращает данные задачи в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/task-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-manager/internal/http/response"
	"github.com/magabrotheeeer/task-manager/internal/lib/sl"
	"github.com/magabrotheeeer/task-manager/internal/models"
	"github.com/magabrotheeeer/task-manager/internal/storage"
)

// Service описывает интерфейс бизнес-логики чтения задачи.
type Service interface {
	Read(ctx context.Context, id int, userUID string) (*models.Task, error)
}

// Handler обрабатывает запросы на получение задачи по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения задачи по ID
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить задачу по ID
// @Description Возвращает задачу текущего пользователя. Чужие задачи не раскрываются.
// @Tags Tasks
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Success 200 {object} map[string]any "Данные задачи"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Задача не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /tasks/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Read(r.Context(), id, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			log.Error("task not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("task not found"))
			return
		}
		log.Error("failed to read task", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read task"))
		return
	}

	log.Info("success to read task", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"task": res,
	}))
}
