package notify

import (
	"context"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Payload - данные экстренного сообщения, из которых собираются
// уведомления для выбранного агентства.
type Payload struct {
	EmergencyID string    `json:"emergency_id"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	Severity    string    `json:"severity"`
	Location    string    `json:"location"`
	ReportedAt  time.Time `json:"reported_at"`
}

// EmailSender определяет контракт канала email-уведомлений
type EmailSender interface {
	SendAssignment(ctx context.Context, to string, p Payload) error
}

// VoiceCaller определяет контракт канала голосовых уведомлений
type VoiceCaller interface {
	PlaceCall(ctx context.Context, to string, p Payload) error
}

// Dispatcher отправляет уведомления выбранному агентству по двум
// независимым каналам. Ошибка любого канала логируется и не
// распространяется дальше: успех приема сообщения не зависит
// от исхода уведомлений.
type Dispatcher struct {
	email  EmailSender
	voice  VoiceCaller
	logger *logrus.Logger
}

func NewDispatcher(email EmailSender, voice VoiceCaller, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		email:  email,
		voice:  voice,
		logger: logger,
	}
}

// Notify уведомляет агентство о новом экстренном сообщении: сначала email,
// затем голосовой вызов, строго последовательно. Канал пропускается, если
// он не настроен или у агентства нет соответствующего контакта. Для nil-агентства (подходящих
// кандидатов не нашлось) уведомление не отправляется, факт логируется.
func (d *Dispatcher) Notify(ctx context.Context, agency *models.Agency, p Payload) {
	log := d.logger.WithFields(logrus.Fields{
		"component":    "notify",
		"emergency_id": p.EmergencyID,
	})

	if agency == nil {
		log.Info("No suitable agency found for emergency, skipping notification")
		return
	}

	log = log.WithField("agency_id", agency.ID)

	if d.email == nil {
		log.Warn("Email channel is not configured, skipping email notification")
	} else if agency.Email != "" {
		if err := d.email.SendAssignment(ctx, agency.Email, p); err != nil {
			log.WithError(err).Error("Failed to send assignment email")
		} else {
			log.Info("Assignment email sent successfully")
		}
	} else {
		log.Warn("Selected agency has no email address, skipping email notification")
	}

	// Голосовой вызов выполняется строго после email, даже если email не удался
	if d.voice == nil {
		log.Warn("Voice channel is not configured, skipping voice notification")
	} else if agency.Phone != nil && *agency.Phone != "" {
		if err := d.voice.PlaceCall(ctx, *agency.Phone, p); err != nil {
			log.WithError(err).Error("Failed to place assignment call")
		} else {
			log.Info("Assignment call placed successfully")
		}
	} else {
		log.Warn("Selected agency has no phone number, skipping voice notification")
	}
}
