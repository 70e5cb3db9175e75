package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/task-manager/internal/models"
)

// CreateTask вставляет новую задачу и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (int, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO tasks (title, description, completed, user_uid, due_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Completed, task.UserUID, task.DueDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadTask возвращает задачу пользователя по её ID.
//
// Чужая или отсутствующая задача возвращается как ErrTaskNotFound,
// чтобы не раскрывать существование чужих записей.
func (s *Storage) ReadTask(ctx context.Context, id int, userUID string) (*models.Task, error) {
	const op = "storage.ReadTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, user_uid, due_date, created_at
			  FROM tasks WHERE id = $1 AND user_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userUID)

	var result models.Task
	var dueDate sql.NullTime
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Completed,
		&result.UserUID, &dueDate, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dueDate.Valid {
		result.DueDate = &dueDate.Time
	}
	return &result, nil
}

// UpdateTask обновляет задачу пользователя по её ID и возвращает количество изменённых строк.
func (s *Storage) UpdateTask(ctx context.Context, task models.Task, id int, userUID string) (int, error) {
	const op = "storage.UpdateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks
			  SET title = $1, description = $2, completed = $3, due_date = $4
			  WHERE id = $5 AND user_uid = $6`
	result, err := s.DB.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.DueDate, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return int(rowsAffected), nil
}

// RemoveTask удаляет задачу пользователя по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveTask(ctx context.Context, id int, userUID string) (int, error) {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tasks WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListTasks возвращает список задач пользователя с пагинацией.
func (s *Storage) ListTasks(ctx context.Context, userUID string, limit, offset int) ([]*models.Task, error) {
	const op = "storage.ListTasks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, user_uid, due_date, created_at
			  FROM tasks
			  WHERE user_uid = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Task
	for rows.Next() {
		var item models.Task
		var dueDate sql.NullTime
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Completed,
			&item.UserUID, &dueDate, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if dueDate.Valid {
			item.DueDate = &dueDate.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindTasksDueTomorrow находит невыполненные задачи, срок которых истекает завтра.
func (s *Storage) FindTasksDueTomorrow(ctx context.Context) ([]*models.TaskReminder, error) {
	const op = "storage.FindTasksDueTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      u.email,
			      u.name,
			      t.title,
			      t.due_date
			  FROM tasks t
			  JOIN users u ON t.user_uid = u.uid
			  WHERE t.completed = FALSE
			    AND t.due_date = CURRENT_DATE + INTERVAL '1 day';`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TaskReminder
	for rows.Next() {
		var tr models.TaskReminder
		if err = rows.Scan(&tr.Email, &tr.Name, &tr.Title, &tr.DueDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &tr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
