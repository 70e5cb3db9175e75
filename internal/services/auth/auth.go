// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/task-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/task-manager/internal/lib/password"
	"github.com/magabrotheeeer/task-manager/internal/models"
	"github.com/magabrotheeeer/task-manager/internal/storage"
)

// Ошибки уровня сервиса аутентификации.
var (
	// ErrInvalidCredentials неверный email или пароль. Не различает
	// несуществующего пользователя и неверный пароль, чтобы не допустить
	// перебор зарегистрированных адресов.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound пользователь из токена больше не существует.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID или ошибку, если не найден.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// При занятом email возвращает ErrEmailTaken. Токен при регистрации
// не выдается, вход выполняется отдельным запросом.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		UID:          uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Неизвестный email и неверный пароль возвращают одинаковую ошибку
// ErrInvalidCredentials. Операция не меняет состояние хранилища.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает UID пользователя.
//
// Хранилище при проверке не опрашивается: токен доверяется до истечения
// срока, удаление пользователя проявится при обращении к данным.
func (s *AuthService) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserUID, nil
}

// Profile возвращает проекцию пользователя: только имя и email.
//
// Если пользователь из токена уже удален, возвращает ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, userUID string) (*models.Profile, error) {
	const op = "services.auth.Profile"
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Profile{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
