package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли агентств. NDRF координирует реагирование и никогда не получает
// автоматическую диспетчеризацию на отдельный инцидент.
const (
	RoleAgency = "agency"
	RoleNDRF   = "ndrf"
)

// Agency представляет зарегистрированное агентство-спасателя.
// Координаты и телефон могут отсутствовать: агентство, которое ни разу
// не сообщило местоположение, участвует в выборе с "недостижимой" дистанцией.
type Agency struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Expertise   string     `json:"expertise"`
	RescuingID  string     `json:"-"`
	Phone       *string    `json:"phone,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Role        string     `json:"role"`
	Verified    bool       `json:"verified"`
	AgencyType  string     `json:"agency_type"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
