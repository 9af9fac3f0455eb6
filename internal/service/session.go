package service

import (
	"context"

	"github.com/google/uuid"
)

// Session - состояние аутентифицированного агентства между запросами.
// Хранится вне процесса (Redis) с TTL; идентификатор сессии выдается
// клиенту в cookie.
type Session struct {
	AgencyID  uuid.UUID `json:"agency_id"`
	Role      string    `json:"role"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// SessionStore определяет контракт хранилища сессий
type SessionStore interface {
	Create(ctx context.Context, session *Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, session *Session) error
	Delete(ctx context.Context, id string) error
}
