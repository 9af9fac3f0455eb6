package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockAgencyService, *mocks.MockEmergencyService, *mocks.MockSessionStore, *gin.Engine) {
	ctrl := gomock.NewController(t)
	agencyMock := mocks.NewMockAgencyService(ctrl)
	emergencyMock := mocks.NewMockEmergencyService(ctrl)
	sessionsMock := mocks.NewMockSessionStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SessionTTL: 24 * time.Hour,
	}

	handler := NewHandler(agencyMock, emergencyMock, sessionsMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return agencyMock, emergencyMock, sessionsMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestReportEmergency_Success(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)
	reqBody := ReportEmergencyRequest{
		Lat:         floatPtr(19.0760),
		Lng:         floatPtr(72.8777),
		Description: "flooding near bridge",
		Tag:         "flood",
		Severity:    "high",
	}

	emergencyMock.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *models.Emergency) error {
			assert.Equal(t, 19.0760, e.Latitude)
			assert.Equal(t, 72.8777, e.Longitude)
			assert.Equal(t, "flood", e.Tag)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Emergency reported successfully")
}

func TestReportEmergency_MissingFields(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Нет координат и описания
	w := makeRequest(router, "POST", "/api/v1/emergencies/report", bytes.NewBufferString(`{"tag": "flood"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required emergency data")
}

func TestReportEmergency_PersistenceFailure(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)
	reqBody := ReportEmergencyRequest{
		Lat:         floatPtr(19.0760),
		Lng:         floatPtr(72.8777),
		Description: "flooding",
		Tag:         "flood",
	}

	emergencyMock.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(errors.New("service: could not report emergency")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to report emergency")
}

func TestListEmergencies_PublicNoSession(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)
	details := []*service.EmergencyDetails{
		{
			Emergency: &models.Emergency{
				ID:        uuid.New(),
				Latitude:  19.0760,
				Longitude: 72.8777,
				Severity:  models.SeverityHigh,
				Status:    models.StatusPending,
			},
			SeverityDisplay: "🔴 High",
		},
	}

	emergencyMock.EXPECT().ListPending(gomock.Any()).Return(details, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "🔴 High", resp[0].SeverityDisplay)
	assert.Nil(t, resp[0].Distance)
}

func TestEmergencyDetails_Unauthorized(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().ListWithDistance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergencies/details", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmergencyDetails_Success(t *testing.T) {
	_, emergencyMock, sessionsMock, router := newTestHandler(t)
	agencyID := uuid.New()
	session := &service.Session{
		AgencyID:  agencyID,
		Role:      models.RoleAgency,
		Latitude:  floatPtr(19.05),
		Longitude: floatPtr(72.85),
	}
	distance := 4123.45
	details := []*service.EmergencyDetails{
		{
			Emergency: &models.Emergency{
				ID:        uuid.New(),
				Latitude:  19.0760,
				Longitude: 72.8777,
				Severity:  models.SeverityLow,
				Status:    models.StatusPending,
			},
			DistanceMeters:  &distance,
			SeverityDisplay: "🟢 Low",
		},
	}

	sessionsMock.EXPECT().Get(gomock.Any(), "session-token").Return(session, nil).Times(1)
	emergencyMock.EXPECT().
		ListWithDistance(gomock.Any(), session.Latitude, session.Longitude).
		Return(details, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/details", nil,
		map[string]string{"X-Session-Token": "session-token"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Distance)
	assert.InDelta(t, 4123.45, *resp[0].Distance, 1e-9)
}

func TestDeleteEmergency_RequiresNDRFRole(t *testing.T) {
	_, emergencyMock, sessionsMock, router := newTestHandler(t)
	session := &service.Session{
		AgencyID: uuid.New(),
		Role:     models.RoleAgency, // Обычная роль, не ndrf
	}

	sessionsMock.EXPECT().Get(gomock.Any(), "session-token").Return(session, nil).Times(1)
	emergencyMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/emergencies/"+uuid.NewString(), nil,
		map[string]string{"X-Session-Token": "session-token"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "NDRF access required")
}

func TestDeleteEmergency_Success(t *testing.T) {
	_, emergencyMock, sessionsMock, router := newTestHandler(t)
	emergencyID := uuid.New()
	session := &service.Session{
		AgencyID: uuid.New(),
		Role:     models.RoleNDRF,
	}

	sessionsMock.EXPECT().Get(gomock.Any(), "session-token").Return(session, nil).Times(1)
	emergencyMock.EXPECT().Delete(gomock.Any(), emergencyID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/emergencies/"+emergencyID.String(), nil,
		map[string]string{"X-Session-Token": "session-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Emergency deleted successfully")
}

func TestDeleteEmergency_NotFound(t *testing.T) {
	_, emergencyMock, sessionsMock, router := newTestHandler(t)
	emergencyID := uuid.New()
	session := &service.Session{
		AgencyID: uuid.New(),
		Role:     models.RoleNDRF,
	}

	sessionsMock.EXPECT().Get(gomock.Any(), "session-token").Return(session, nil).Times(1)
	emergencyMock.EXPECT().
		Delete(gomock.Any(), emergencyID).
		Return(fmt.Errorf("emergency with id %s: %w", emergencyID, service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/emergencies/"+emergencyID.String(), nil,
		map[string]string{"X-Session-Token": "session-token"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Emergency not found")
}

func TestLogin_Success(t *testing.T) {
	agencyMock, _, sessionsMock, router := newTestHandler(t)
	agency := &models.Agency{
		ID:        uuid.New(),
		Name:      "Rescue Team",
		Role:      models.RoleAgency,
		Latitude:  floatPtr(19.05),
		Longitude: floatPtr(72.85),
	}

	agencyMock.EXPECT().
		Login(gomock.Any(), "rescue@x.com", "strongpass").
		Return(agency, nil).
		Times(1)
	sessionsMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, s *service.Session) (string, error) {
			assert.Equal(t, agency.ID, s.AgencyID)
			assert.Equal(t, models.RoleAgency, s.Role)
			return "new-session-id", nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/auth/login",
		bytes.NewBufferString(`{"email": "rescue@x.com", "password": "strongpass"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), agency.ID.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session_id=new-session-id")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	agencyMock, _, sessionsMock, router := newTestHandler(t)

	agencyMock.EXPECT().
		Login(gomock.Any(), "rescue@x.com", "wrongpass").
		Return(nil, service.ErrInvalidCredentials).
		Times(1)
	sessionsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/auth/login",
		bytes.NewBufferString(`{"email": "rescue@x.com", "password": "wrongpass"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegister_Success(t *testing.T) {
	agencyMock, _, sessionsMock, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Name:       "Rescue Team",
		Email:      "rescue@x.com",
		Password:   "strongpass",
		Expertise:  "flood",
		RescuingID: "1234a5bcd",
	}
	agency := &models.Agency{
		ID:   uuid.New(),
		Name: reqBody.Name,
		Role: models.RoleAgency,
	}

	agencyMock.EXPECT().Register(gomock.Any(), gomock.Any()).Return(agency, nil).Times(1)
	sessionsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return("new-session-id", nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), agency.ID.String())
}

func TestRegister_EmailTaken(t *testing.T) {
	agencyMock, _, sessionsMock, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Name:       "Rescue Team",
		Email:      "rescue@x.com",
		Password:   "strongpass",
		Expertise:  "flood",
		RescuingID: "1234a5bcd",
	}

	agencyMock.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrEmailTaken).Times(1)
	sessionsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestBulkDelete_Forbidden(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().
		DeleteAll(gomock.Any(), "local@x.com", "strongpass").
		Return(int64(0), service.ErrForbidden).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/purge",
		bytes.NewBufferString(`{"email": "local@x.com", "password": "strongpass"}`))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials or insufficient permissions")
}

func TestBulkDelete_Success(t *testing.T) {
	_, emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().
		DeleteAll(gomock.Any(), "ndrf@x.com", "strongpass").
		Return(int64(5), nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/purge",
		bytes.NewBufferString(`{"email": "ndrf@x.com", "password": "strongpass"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully deleted 5 emergencies.")
}

func TestUpdateLocation_Success(t *testing.T) {
	agencyMock, _, sessionsMock, router := newTestHandler(t)
	agencyID := uuid.New()
	session := &service.Session{
		AgencyID: agencyID,
		Role:     models.RoleAgency,
	}

	sessionsMock.EXPECT().Get(gomock.Any(), "session-token").Return(session, nil).Times(1)
	agencyMock.EXPECT().UpdateLocation(gomock.Any(), agencyID, 19.05, 72.85).Return(nil).Times(1)
	sessionsMock.EXPECT().
		Update(gomock.Any(), "session-token", gomock.Any()).
		DoAndReturn(func(_ any, _ string, s *service.Session) error {
			// Сессия видит новые координаты сразу
			require.NotNil(t, s.Latitude)
			assert.InDelta(t, 19.05, *s.Latitude, 1e-9)
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/agencies/location",
		bytes.NewBufferString(`{"lat": 19.05, "lng": 72.85}`),
		map[string]string{"X-Session-Token": "session-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}

func TestListAgencies_Unauthorized(t *testing.T) {
	agencyMock, _, _, router := newTestHandler(t)

	agencyMock.EXPECT().ListAgencies(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/agencies", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
