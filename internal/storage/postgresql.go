// Package storage реализует хранилище данных на основе PostgreSQL
// для управления пользователями и их задачами. Предоставляет методы
// создания, чтения, обновления и удаления записей.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, проверяются вызывающим кодом через errors.Is.
var (
	// ErrUserNotFound пользователь с указанным email или uid отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already taken")
	// ErrTaskNotFound задача отсутствует или принадлежит другому пользователю.
	ErrTaskNotFound = errors.New("task not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и задачами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'tasks'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table tasks missing or query error: %w", err)
	}
	return nil
}
