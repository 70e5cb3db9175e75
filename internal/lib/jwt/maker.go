// Package jwt реализует генерацию и парсинг JWT токенов для аутентификации.
//
// Maker определяет интерфейс для создания и проверки токенов, несущих
// идентификатор пользователя. MakerImpl — конкретная реализация с
// использованием секретного ключа и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен для указанного идентификатора пользователя
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает *Claims
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
