package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	agencyService    service.AgencyService
	emergencyService service.EmergencyService
	sessions         service.SessionStore
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(agencyService service.AgencyService, emergencyService service.EmergencyService, sessions service.SessionStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		agencyService:    agencyService,
		emergencyService: emergencyService,
		sessions:         sessions,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Register a new agency
// @Description Register a new response agency and start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param agency body RegisterRequest true "Agency registration request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email or rescuing id already in use"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agency, err := h.agencyService.Register(c.Request.Context(), DTOToRegisterInput(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRescuingID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Rescuing ID pattern. Must be NNNNANAAA."})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, service.ErrRescuingIDTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Rescuing ID already in use."})
		default:
			log.WithError(err).Error("Failed to register agency in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if err := h.startSession(c, agency.ID, agency.Role, agency.Latitude, agency.Longitude); err != nil {
		log.WithError(err).Error("Failed to create session after registration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "user": ModelToUserResponse(agency)})
}

// @Summary Authenticate an agency
// @Description Authenticate an agency by email and password and start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	agency, err := h.agencyService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to authenticate agency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.startSession(c, agency.ID, agency.Role, agency.Latitude, agency.Longitude); err != nil {
		log.WithError(err).Error("Failed to create session after login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "user": ModelToUserResponse(agency)})
}

// @Summary End the current session
// @Description End the caller's session, if any.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if sessionID, err := c.Cookie(sessionCookie); err == nil && sessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			log.WithError(err).Warn("Failed to delete session")
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// @Summary Check the current session
// @Description Report whether the caller holds a valid session and for whom.
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /auth/session [get]
func (h *Handler) checkSession(c *gin.Context) {
	log := h.logger.WithField("method", "checkSession")

	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		sessionID = c.GetHeader("X-Session-Token")
	}
	if sessionID == "" {
		c.JSON(http.StatusOK, SessionResponse{IsAuthenticated: false})
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusOK, SessionResponse{IsAuthenticated: false})
		return
	}

	agency, err := h.agencyService.GetAgency(c.Request.Context(), session.AgencyID)
	if err != nil {
		log.WithError(err).Warn("Session references a missing agency")
		c.JSON(http.StatusOK, SessionResponse{IsAuthenticated: false})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		IsAuthenticated: true,
		User: &SessionUserDetails{
			ID:        agency.ID,
			Name:      agency.Name,
			Role:      session.Role,
			Latitude:  agency.Latitude,
			Longitude: agency.Longitude,
		},
	})
}

// @Summary Report a new emergency
// @Description Public intake of an emergency report. The closest eligible agency is notified best-effort.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param emergency body ReportEmergencyRequest true "Emergency report"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing required emergency data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/report [post]
func (h *Handler) reportEmergency(c *gin.Context) {
	var input ReportEmergencyRequest
	log := h.logger.WithField("method", "reportEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required emergency data"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required emergency data"})
		return
	}

	if err := h.emergencyService.Report(c.Request.Context(), DTOToEmergencyModel(input)); err != nil {
		log.WithError(err).Error("Failed to report emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report emergency"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Emergency reported successfully"})
}

// @Summary List pending emergencies
// @Description Public list of pending emergencies, newest first.
// @Tags Emergencies
// @Produce json
// @Success 200 {array} EmergencyResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencies")

	emergencies, err := h.emergencyService.ListPending(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DetailsToEmergencyResponses(emergencies))
}

// @Summary List pending emergencies with distance
// @Description List pending emergencies with the distance (meters) from the caller's last known coordinates. Requires a session.
// @Tags Emergencies
// @Produce json
// @Success 200 {array} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/details [get]
func (h *Handler) emergencyDetails(c *gin.Context) {
	log := h.logger.WithField("method", "emergencyDetails")
	session := sessionFromContext(c)

	emergencies, err := h.emergencyService.ListWithDistance(c.Request.Context(), session.Latitude, session.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to list emergency details from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DetailsToEmergencyResponses(emergencies))
}

// @Summary Delete an emergency
// @Description Delete a single emergency by its ID. Requires the ndrf role.
// @Tags Emergencies
// @Produce json
// @Param id path string true "Emergency ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "NDRF access required"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [delete]
func (h *Handler) deleteEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEmergency").WithField("id", id)

	if err := h.emergencyService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Emergency not found."})
			return
		}
		log.WithError(err).Error("Failed to delete emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Emergency deleted successfully."})
}

// @Summary Delete all emergencies
// @Description Delete all emergencies after re-authenticating with ndrf credentials.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param credentials body BulkDeleteRequest true "Re-authentication request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Invalid credentials or insufficient permissions"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/purge [post]
func (h *Handler) bulkDeleteEmergencies(c *gin.Context) {
	var input BulkDeleteRequest
	log := h.logger.WithField("method", "bulkDeleteEmergencies")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	deleted, err := h.emergencyService.DeleteAll(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials or insufficient permissions"})
			return
		}
		log.WithError(err).Error("Failed to delete emergencies in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": fmt.Sprintf("Successfully deleted %d emergencies.", deleted)})
}

// @Summary List agencies
// @Description List all registered agencies. Requires a session.
// @Tags Agencies
// @Produce json
// @Success 200 {array} AgencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agencies [get]
func (h *Handler) listAgencies(c *gin.Context) {
	log := h.logger.WithField("method", "listAgencies")

	agencies, err := h.agencyService.ListAgencies(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list agencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAgencyResponses(agencies))
}

// @Summary Update own location
// @Description Update the caller agency's current coordinates. Requires a session.
// @Tags Agencies
// @Accept json
// @Produce json
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agencies/location [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UpdateLocationRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFromContext(c)
	if err := h.agencyService.UpdateLocation(c.Request.Context(), session.AgencyID, *input.Lat, *input.Lng); err != nil {
		log.WithError(err).Error("Failed to update agency location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Обновляем координаты и в сессии, чтобы выдача с дистанцией их видела сразу
	session.Latitude = input.Lat
	session.Longitude = input.Lng
	if sessionID := c.GetString(ctxSessionIDKey); sessionID != "" {
		if err := h.sessions.Update(c.Request.Context(), sessionID, session); err != nil {
			log.WithError(err).Warn("Failed to refresh session coordinates")
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// startSession создает сессию для агентства и выставляет cookie
func (h *Handler) startSession(c *gin.Context, agencyID uuid.UUID, role string, lat, lng *float64) error {
	sessionID, err := h.sessions.Create(c.Request.Context(), &service.Session{
		AgencyID:  agencyID,
		Role:      role,
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie, sessionID, int(h.cfg.SessionTTL.Seconds()), "/", "", true, true)
	return nil
}
