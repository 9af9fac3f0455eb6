package service_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAgencyService — вспомогательная функция для создания сервиса с моками.
func newTestAgencyService(t *testing.T) (service.AgencyService, *mocks.MockAgencyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAgencyRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewAgencyService(repoMock, logger), repoMock
}

// sha256Hex повторяет формат хранения секретов в бд
func sha256Hex(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func validRegisterInput() service.RegisterInput {
	return service.RegisterInput{
		Name:       "Городская спасательная служба",
		Email:      "rescue@x.com",
		Password:   "strongpass",
		Expertise:  "flood",
		RescuingID: "1234a5bcd",
	}
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	input := validRegisterInput()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, input.Email).
		Return(nil, fmt.Errorf("agency with email %s: %w", input.Email, service.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().
		RescuingIDExists(ctx, sha256Hex(input.RescuingID)).
		Return(false, nil).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, agency *models.Agency) error {
			agency.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	agency, err := svc.Register(ctx, input)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, agency)
	assert.Equal(t, models.RoleAgency, agency.Role)
	assert.Equal(t, sha256Hex(input.Password), agency.Password)
	assert.False(t, agency.Verified)
	assert.Equal(t, "local", agency.AgencyType)
	// Координаты по умолчанию до первого обновления местоположения
	require.NotNil(t, agency.Latitude)
	require.NotNil(t, agency.Longitude)
	assert.InDelta(t, 20.5937, *agency.Latitude, 1e-9)
	assert.InDelta(t, 78.9629, *agency.Longitude, 1e-9)
}

func TestRegister_InvalidRescuingIDPattern(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.RescuingID = "abcd12345"

	// Ожидания: до хранилища не доходим
	repoMock.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.Register(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidRescuingID)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	input := validRegisterInput()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, input.Email).
		Return(&models.Agency{ID: uuid.New(), Email: input.Email}, nil).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.Register(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegister_RescuingIDTaken(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	input := validRegisterInput()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, input.Email).
		Return(nil, fmt.Errorf("agency with email %s: %w", input.Email, service.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().
		RescuingIDExists(ctx, sha256Hex(input.RescuingID)).
		Return(true, nil).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.Register(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrRescuingIDTaken)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	stored := &models.Agency{
		ID:       uuid.New(),
		Email:    "rescue@x.com",
		Password: sha256Hex("strongpass"),
		Role:     models.RoleAgency,
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "rescue@x.com").Return(stored, nil).Times(1)

	// Действие
	agency, err := svc.Login(ctx, "rescue@x.com", "strongpass")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored.ID, agency.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	stored := &models.Agency{
		ID:       uuid.New(),
		Email:    "rescue@x.com",
		Password: sha256Hex("strongpass"),
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "rescue@x.com").Return(stored, nil).Times(1)

	// Действие
	_, err := svc.Login(ctx, "rescue@x.com", "wrongpass")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ghost@x.com").
		Return(nil, fmt.Errorf("agency with email ghost@x.com: %w", service.ErrNotFound)).
		Times(1)

	// Действие
	_, err := svc.Login(ctx, "ghost@x.com", "strongpass")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	agencyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().UpdateLocation(ctx, agencyID, 19.05, 72.85).Return(nil).Times(1)

	// Действие
	err := svc.UpdateLocation(ctx, agencyID, 19.05, 72.85)

	// Проверки
	require.NoError(t, err)
}
