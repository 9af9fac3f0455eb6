package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы и уровни серьезности экстренного сообщения.
// Жизненный цикл минимален: сообщение создается как "pending"
// и может быть только удалено привилегированной ролью.
const (
	StatusPending = "pending"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Emergency представляет публичное сообщение об экстренной ситуации.
type Emergency struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	ReportedBy  string    `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
}
