package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookie = "session_id"

	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

// SessionAuthMiddleware - middleware аутентификации по сессионной cookie.
// Идентификатор сессии принимается из cookie или заголовка X-Session-Token.
func SessionAuthMiddleware(sessions service.SessionStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = c.GetHeader("X-Session-Token")
		}

		if sessionID == "" {
			log.Warn("Session id missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			log.WithError(err).Warn("Invalid or expired session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ctxSessionKey, session)
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

// RequireNDRFMiddleware пропускает только привилегированную роль ndrf.
// Авторизация проверяется до любого обращения к хранилищу.
func RequireNDRFMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFromContext(c)
		if session == nil || session.Role != models.RoleNDRF {
			log.Warn("NDRF role required for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized: NDRF access required."})
			return
		}
		c.Next()
	}
}

// sessionFromContext возвращает сессию, сохраненную middleware аутентификации
func sessionFromContext(c *gin.Context) *service.Session {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*service.Session)
	if !ok {
		return nil
	}
	return session
}
