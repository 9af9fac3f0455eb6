package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// EmergencyRepository определяет контракт для работы с бд экстренных сообщений
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	ListPending(ctx context.Context) ([]*models.Emergency, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Notifier определяет контракт диспетчера уведомлений. Уведомление -
// побочный эффект с полностью изолированными ошибками, поэтому
// метод ничего не возвращает.
type Notifier interface {
	Notify(ctx context.Context, agency *models.Agency, p notify.Payload)
}

// EmergencyDetails - экстренное сообщение, дополненное вычисленной
// дистанцией до наблюдателя (в метрах) и человекочитаемой меткой серьезности.
type EmergencyDetails struct {
	*models.Emergency
	DistanceMeters  *float64
	SeverityDisplay string
}

// EmergencyService определяет контракт бизнес-логики экстренных сообщений
type EmergencyService interface {
	Report(ctx context.Context, emergency *models.Emergency) error
	ListPending(ctx context.Context) ([]*EmergencyDetails, error)
	ListWithDistance(ctx context.Context, viewerLat, viewerLng *float64) ([]*EmergencyDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, email, password string) (int64, error)
}

type emergencyService struct {
	repo       EmergencyRepository
	agencyRepo AgencyRepository
	notifier   Notifier
	logger     *logrus.Logger
}

func NewEmergencyService(repo EmergencyRepository, agencyRepo AgencyRepository, notifier Notifier, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		repo:       repo,
		agencyRepo: agencyRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Report принимает публичное сообщение: сохраняет его как "pending",
// затем выбирает ближайшее пригодное агентство и уведомляет его.
// Успех определяется только сохранением: после него ошибки подбора
// и уведомления логируются и не возвращаются вызывающей стороне.
func (s *emergencyService) Report(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "Report",
		"tag":     emergency.Tag,
	})
	log.Info("Attempting to report a new emergency")

	emergency.Status = models.StatusPending
	emergency.ReportedBy = "public"
	if emergency.Severity == "" {
		emergency.Severity = models.SeverityLow
	}

	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to persist emergency in repository")
		return fmt.Errorf("service: could not report emergency: %w", err)
	}
	log = log.WithField("emergency_id", emergency.ID)
	log.Info("Emergency persisted successfully")

	// Роль ndrf исключена из кандидатов уже на уровне запроса к бд
	candidates, err := s.agencyRepo.ListDispatchCandidates(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatch candidates, emergency stays unassigned")
		return nil
	}

	selected := dispatch.SelectClosest(emergency.Latitude, emergency.Longitude, candidates)
	s.notifier.Notify(ctx, selected, notify.Payload{
		EmergencyID: emergency.ID.String(),
		Description: emergency.Description,
		Tag:         emergency.Tag,
		Severity:    emergency.Severity,
		Location:    fmt.Sprintf("%.5f, %.5f", emergency.Latitude, emergency.Longitude),
		ReportedAt:  emergency.CreatedAt,
	})
	return nil
}

// ListPending возвращает ожидающие сообщения для публичной ленты
func (s *emergencyService) ListPending(ctx context.Context) ([]*EmergencyDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListPending",
	})
	log.Info("Listing pending emergencies")

	emergencies, err := s.repo.ListPending(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list pending emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}

	details := make([]*EmergencyDetails, len(emergencies))
	for i, emergency := range emergencies {
		details[i] = &EmergencyDetails{
			Emergency:       emergency,
			SeverityDisplay: SeverityDisplay(emergency.Severity),
		}
	}

	log.WithField("count", len(details)).Info("Pending emergencies listed successfully")
	return details, nil
}

// ListWithDistance возвращает ожидающие сообщения с дистанцией до
// наблюдателя в метрах. Дистанция отсутствует, если координаты
// наблюдателя неизвестны.
func (s *emergencyService) ListWithDistance(ctx context.Context, viewerLat, viewerLng *float64) ([]*EmergencyDetails, error) {
	details, err := s.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		distance := geo.Distance(viewerLat, viewerLng, &d.Latitude, &d.Longitude)
		if !math.IsInf(distance, 1) {
			meters := math.Round(distance*1000*100) / 100
			d.DistanceMeters = &meters
		}
	}
	return details, nil
}

// Delete удаляет одно экстренное сообщение. Проверка роли выполняется
// до вызова, в middleware аутентификации.
func (s *emergencyService) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "Delete",
		"emergency_id": id,
	})
	log.Info("Attempting to delete emergency")

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to delete a non-existent emergency")
			return err
		}
		log.WithError(err).Error("Failed to delete emergency in repository")
		return fmt.Errorf("service: could not delete emergency: %w", err)
	}

	log.Info("Emergency deleted successfully")
	return nil
}

// DeleteAll удаляет все экстренные сообщения после повторной проверки
// учетных данных: операция разрешена только агентству с ролью ndrf.
func (s *emergencyService) DeleteAll(ctx context.Context, email, password string) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "DeleteAll",
		"email":   email,
	})
	log.Info("Attempting bulk emergency deletion")

	agency, err := s.agencyRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Bulk deletion rejected: unknown email")
			return 0, ErrForbidden
		}
		log.WithError(err).Error("Failed to re-authenticate agency")
		return 0, fmt.Errorf("service: could not re-authenticate agency: %w", err)
	}
	if agency.Password != hashSecret(password) || agency.Role != models.RoleNDRF {
		log.Warn("Bulk deletion rejected: invalid credentials or insufficient permissions")
		return 0, ErrForbidden
	}

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to delete emergencies in repository")
		return 0, fmt.Errorf("service: could not delete emergencies: %w", err)
	}

	log.WithField("deleted", deleted).Info("Emergencies deleted successfully")
	return deleted, nil
}

// SeverityDisplay возвращает человекочитаемую метку серьезности
func SeverityDisplay(severity string) string {
	switch severity {
	case models.SeverityHigh:
		return "🔴 High"
	case models.SeverityMedium:
		return "🟡 Medium"
	default:
		return "🟢 Low"
	}
}
