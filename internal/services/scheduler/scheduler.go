// Package services содержит планировщик, который находит задачи с истекающим
// завтра сроком и публикует напоминания в очередь уведомлений.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/task-manager/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/task-manager/internal/lib/sl"
	"github.com/magabrotheeeer/task-manager/internal/models"
)

// TaskRepository определяет выборку задач с подходящим завтра сроком.
type TaskRepository interface {
	FindTasksDueTomorrow(ctx context.Context) ([]*models.TaskReminder, error)
}

// SchedulerService периодически опрашивает хранилище и публикует напоминания.
type SchedulerService struct {
	repo TaskRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo TaskRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindTasksDueTomorrow запускает периодический поиск задач со сроком "завтра".
//
// Первый проход выполняется сразу, далее раз в 12 часов до отмены контекста.
func (s *SchedulerService) FindTasksDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.runFindTasksDueTomorrow(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindTasksDueTomorrow(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindTasksDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find tasks due tomorrow")
	reminders, err := s.repo.FindTasksDueTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find tasks", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no tasks due tomorrow found")
		return
	}
	s.log.Info("found tasks due tomorrow", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", rabbitmq.TaskDueRoutingKey, reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
