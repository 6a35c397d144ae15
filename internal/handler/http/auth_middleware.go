// File: internal/handler/http/auth_middleware.go
package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/service"
)

const (
	authHeaderKey  = "Authorization"
	authTypeBearer = "bearer"

	// ContextUserKey is the gin context key under which the authenticated
	// user is stored.
	ContextUserKey = "user"
)

// RequireAuth adapts the explicit AccessGuard check into gin middleware:
// it extracts the bearer token, asks the guard to authenticate it at the
// given level and stores the resolved user in the request context.
func RequireAuth(guard *service.AccessGuard, level service.AuthLevel, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			RespondWithError(c, domainErrors.ErrUnauthorized, logger)
			return
		}

		user, err := guard.Authenticate(c.Request.Context(), tokenString, level)
		if err != nil {
			RespondWithError(c, err, logger)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(authHeaderKey)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authTypeBearer) {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
