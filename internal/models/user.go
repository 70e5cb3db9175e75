// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"uid"`   // Уникальный идентификатор пользователя
	Name         string    `json:"name"`  // Отображаемое имя пользователя
	Email        string    `json:"email"` // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`     // Хэш пароля, никогда не сериализуется в ответы
	CreatedAt    time.Time `json:"created_at"`
}

// Profile проекция пользователя для выдачи наружу: только имя и email.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
