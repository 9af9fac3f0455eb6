package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	sessionAuth := SessionAuthMiddleware(h.sessions, h.logger)
	requireNDRF := RequireNDRFMiddleware(h.logger)

	// Маршруты аутентификации агентств
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.checkSession)
	}

	// Маршруты экстренных сообщений
	emergencies := api.Group("/emergencies")
	{
		emergencies.POST("/report", h.reportEmergency) // Публичный прием сообщений
		emergencies.GET("", h.listEmergencies)         // Публичная лента ожидающих
		emergencies.GET("/details", sessionAuth, h.emergencyDetails)
		emergencies.DELETE("/:id", sessionAuth, requireNDRF, h.deleteEmergency)
		emergencies.POST("/purge", h.bulkDeleteEmergencies) // Повторная аутентификация в теле запроса
	}

	// Маршруты агентств (только для аутентифицированных)
	agencies := api.Group("/agencies", sessionAuth)
	{
		agencies.GET("", h.listAgencies)
		agencies.POST("/location", h.updateLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
