package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации агентства
// @Description DTO для регистрации агентства
type RegisterRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Expertise  string  `json:"expertise" validate:"required"`
	RescuingID string  `json:"rescuingId" validate:"required"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// LoginRequest DTO для входа агентства
// @Description DTO для входа агентства
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ReportEmergencyRequest DTO для публичного сообщения об экстренной ситуации.
// Координаты - указатели, чтобы отличать отсутствующее поле от нулевого значения.
// @Description DTO для публичного сообщения об экстренной ситуации
type ReportEmergencyRequest struct {
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Lng         *float64 `json:"lng" validate:"required,longitude"`
	Description string   `json:"description" validate:"required"`
	Tag         string   `json:"tag" validate:"required"`
	Severity    string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
}

// UpdateLocationRequest DTO для обновления координат агентства
// @Description DTO для обновления координат агентства
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// BulkDeleteRequest DTO для массового удаления с повторной аутентификацией
// @Description DTO для массового удаления с повторной аутентификацией
type BulkDeleteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с краткой информацией об аутентифицированном агентстве
// @Description DTO с краткой информацией об аутентифицированном агентстве
type UserResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// SessionResponse DTO для проверки сессии
// @Description DTO для проверки сессии
type SessionResponse struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *SessionUserDetails `json:"user,omitempty"`
}

// SessionUserDetails - данные агентства внутри SessionResponse
type SessionUserDetails struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// AgencyResponse DTO для ответа с информацией об агентстве
// @Description DTO для ответа с информацией об агентстве
type AgencyResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Expertise   string     `json:"expertise"`
	Role        string     `json:"role"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Verified    bool       `json:"verified"`
	AgencyType  string     `json:"agency_type"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// EmergencyResponse DTO для ответа с информацией об экстренном сообщении.
// Distance (в метрах) присутствует только в выдаче для аутентифицированного
// наблюдателя с известными координатами.
// @Description DTO для ответа с информацией об экстренном сообщении
type EmergencyResponse struct {
	ID              uuid.UUID `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Description     string    `json:"description"`
	Tag             string    `json:"tag"`
	Severity        string    `json:"severity"`
	SeverityDisplay string    `json:"severity_display"`
	Status          string    `json:"status"`
	Distance        *float64  `json:"distance,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
