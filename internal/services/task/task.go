// Package services содержит бизнес-логику для управления задачами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/task-manager/internal/models"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask добавляет новую задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (int, error)
	// ReadTask возвращает задачу пользователя по ID.
	ReadTask(ctx context.Context, id int, userUID string) (*models.Task, error)
	// UpdateTask обновляет данные задачи по ID.
	UpdateTask(ctx context.Context, task models.Task, id int, userUID string) (int, error)
	// RemoveTask удаляет задачу по ID и возвращает количество удалённых записей.
	RemoveTask(ctx context.Context, id int, userUID string) (int, error)
	// ListTasks возвращает список задач пользователя с пагинацией.
	ListTasks(ctx context.Context, userUID string, limit, offset int) ([]*models.Task, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// TaskService реализует бизнес-логику работы с задачами, включая кеширование.
type TaskService struct {
	repo  TaskRepository
	cache Cache
	log   *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService.
func NewTaskService(repo TaskRepository, cache Cache, log *slog.Logger) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// parseDueDate разбирает опциональную дату срока из запроса.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	dueDate, err := time.Parse("02-01-2006", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}
	return &dueDate, nil
}

// Create создает новую задачу для пользователя и возвращает ID.
//
// Кеш при создании не заполняется: ID и created_at назначает база,
// и до первого чтения полной записи у сервиса просто нет.
// Кеш наполнится при первом Read.
func (s *TaskService) Create(ctx context.Context, userUID string, req models.DummyTask) (int, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return 0, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserUID:     userUID,
		DueDate:     dueDate,
	}

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new task", slog.Int("id", id))
	return id, nil
}

// Read возвращает задачу по ID, используя кеш или репозиторий.
//
// Кеш хранит задачи вместе с владельцем, поэтому попадание для чужого
// пользователя отбрасывается и запрос уходит в хранилище.
func (s *TaskService) Read(ctx context.Context, id int, userUID string) (*models.Task, error) {
	var result *models.Task
	cacheKey := fmt.Sprintf("task:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil && result.UserUID == userUID {
		return result, nil
	}
	result, err = s.repo.ReadTask(ctx, id, userUID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey),
			slog.Any("err", err))
	}
	return result, nil
}

// Update обновляет задачу и обновляет кеш.
func (s *TaskService) Update(ctx context.Context, req models.DummyTask, id int, userUID string) (int, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return 0, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserUID:     userUID,
		DueDate:     dueDate,
	}
	res, err := s.repo.UpdateTask(ctx, task, id, userUID)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated task in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет задачу по ID и инвалидирует кеш.
func (s *TaskService) Remove(ctx context.Context, id int, userUID string) (int, error) {
	cacheKey := fmt.Sprintf("task:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveTask(ctx, id, userUID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// List возвращает список задач пользователя с пагинацией.
func (s *TaskService) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, userUID, limit, offset)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
