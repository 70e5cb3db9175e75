// Package models содержит доменные структуры, описывающие задачу пользователя,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Task представляет собой основную модель задачи,
// используемую в бизнес-логике и хранилище.
// Поле DueDate может быть nil — это означает задачу без срока.
type Task struct {
	ID          int        `json:"id"`          // Идентификатор задачи
	Title       string     `json:"title"`       // Заголовок задачи
	Description string     `json:"description"` // Описание задачи (опционально)
	Completed   bool       `json:"completed"`   // Признак выполнения
	UserUID     string     `json:"user_uid"`    // Владелец задачи
	DueDate     *time.Time `json:"due_date,omitempty"` // Срок выполнения (опционально)
	CreatedAt   time.Time  `json:"created_at"`
}

// DummyTask используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Task.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyTask struct {
	Title       string `json:"title" validate:"required,max=200"` // Заголовок задачи
	Description string `json:"description" validate:"max=2000"`   // Описание задачи
	Completed   bool   `json:"completed"`                         // Признак выполнения
	DueDate     string `json:"due_date" validate:"omitempty,datetime=02-01-2006"` // Срок в формате 02-01-2006
}

// TaskReminder описывает сообщение о задаче с истекающим завтра сроком,
// публикуемое в очередь уведомлений.
type TaskReminder struct {
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}
