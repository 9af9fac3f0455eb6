package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// rescuingIDPattern - формат государственного идентификатора спасательной
// службы: NNNNANAAA (N - цифра, A - буква).
var rescuingIDPattern = regexp.MustCompile(`^\d{4}[a-zA-Z]\d[a-zA-Z]{3}$`)

// AgencyRepository определяет контракт для работы с бд агентств
type AgencyRepository interface {
	Create(ctx context.Context, agency *models.Agency) error
	GetByEmail(ctx context.Context, email string) (*models.Agency, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agency, error)
	RescuingIDExists(ctx context.Context, digest string) (bool, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	ListAll(ctx context.Context) ([]*models.Agency, error)
	ListDispatchCandidates(ctx context.Context) ([]*models.Agency, error)
}

// RegisterInput - входные данные регистрации агентства
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Expertise  string
	RescuingID string
	Phone      *string
}

// AgencyService определяет контракт бизнес-логики управления агентствами
type AgencyService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Agency, error)
	Login(ctx context.Context, email, password string) (*models.Agency, error)
	UpdateLocation(ctx context.Context, agencyID uuid.UUID, lat, lng float64) error
	GetAgency(ctx context.Context, id uuid.UUID) (*models.Agency, error)
	ListAgencies(ctx context.Context) ([]*models.Agency, error)
}

type agencyService struct {
	repo   AgencyRepository
	logger *logrus.Logger
}

func NewAgencyService(repo AgencyRepository, logger *logrus.Logger) AgencyService {
	return &agencyService{
		repo:   repo,
		logger: logger,
	}
}

// Register регистрирует новое агентство. Email и rescuing id должны быть
// уникальны; новое агентство получает координаты по умолчанию, роль "agency"
// и непроверенный статус.
func (s *agencyService) Register(ctx context.Context, input RegisterInput) (*models.Agency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "Register",
		"email":   input.Email,
	})
	log.Info("Attempting to register a new agency")

	if !rescuingIDPattern.MatchString(input.RescuingID) {
		log.Warn("Rescuing ID does not match the required pattern")
		return nil, ErrInvalidRescuingID
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		log.Warn("Email is already registered")
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to check email uniqueness")
		return nil, fmt.Errorf("service: could not check email: %w", err)
	}

	rescuingDigest := hashSecret(input.RescuingID)
	taken, err := s.repo.RescuingIDExists(ctx, rescuingDigest)
	if err != nil {
		log.WithError(err).Error("Failed to check rescuing id uniqueness")
		return nil, fmt.Errorf("service: could not check rescuing id: %w", err)
	}
	if taken {
		log.Warn("Rescuing ID is already in use")
		return nil, ErrRescuingIDTaken
	}

	// Координаты по умолчанию, пока агентство не сообщит свое местоположение
	defaultLat, defaultLng := 20.5937, 78.9629
	agency := &models.Agency{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashSecret(input.Password),
		Expertise:  input.Expertise,
		RescuingID: rescuingDigest,
		Phone:      input.Phone,
		Latitude:   &defaultLat,
		Longitude:  &defaultLng,
		Role:       models.RoleAgency,
		Verified:   false,
		AgencyType: "local",
	}

	if err := s.repo.Create(ctx, agency); err != nil {
		log.WithError(err).Error("Failed to create agency in repository")
		return nil, fmt.Errorf("service: could not register agency: %w", err)
	}

	log.WithField("agency_id", agency.ID).Info("Agency registered successfully")
	return agency, nil
}

// Login проверяет учетные данные агентства и возвращает его запись
func (s *agencyService) Login(ctx context.Context, email, password string) (*models.Agency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting to authenticate agency")

	agency, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get agency by email")
		return nil, fmt.Errorf("service: could not authenticate agency: %w", err)
	}

	if agency.Password != hashSecret(password) {
		log.Warn("Password mismatch")
		return nil, ErrInvalidCredentials
	}

	log.WithField("agency_id", agency.ID).Info("Agency authenticated successfully")
	return agency, nil
}

// UpdateLocation обновляет текущие координаты самого агентства
func (s *agencyService) UpdateLocation(ctx context.Context, agencyID uuid.UUID, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "UpdateLocation",
		"agency_id": agencyID,
	})
	log.Info("Updating agency location")

	if err := s.repo.UpdateLocation(ctx, agencyID, lat, lng); err != nil {
		log.WithError(err).Error("Failed to update agency location in repository")
		return fmt.Errorf("service: could not update agency location: %w", err)
	}

	log.Info("Agency location updated successfully")
	return nil
}

// GetAgency получает агентство по ID
func (s *agencyService) GetAgency(ctx context.Context, id uuid.UUID) (*models.Agency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "GetAgency",
		"agency_id": id,
	})

	agency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get agency by id")
		return nil, fmt.Errorf("service: could not get agency: %w", err)
	}
	return agency, nil
}

// ListAgencies возвращает все зарегистрированные агентства
func (s *agencyService) ListAgencies(ctx context.Context) ([]*models.Agency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "ListAgencies",
	})
	log.Info("Listing agencies")

	agencies, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list agencies from repository")
		return nil, fmt.Errorf("service: could not list agencies: %w", err)
	}

	log.WithField("count", len(agencies)).Info("Agencies listed successfully")
	return agencies, nil
}

// hashSecret возвращает sha256-дайджест секрета в hex, как он хранится в бд
func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
