// File: internal/handler/http/response.go
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
)

// ResponseError is the error body shape for every failed request.
type ResponseError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RespondWithError maps a domain error to an HTTP status and writes the
// error body. Internal failures are logged with detail but surface only a
// generic message.
func RespondWithError(c *gin.Context, err error, logger *zap.Logger) {
	status, code, message := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error("Internal error handling request",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	c.AbortWithStatusJSON(status, ResponseError{Error: message, Code: code})
}

// RespondWithValidationError reports a malformed or invalid request body.
func RespondWithValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ResponseError{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func classify(err error) (status int, code string, message string) {
	switch {
	case errors.Is(err, domainErrors.ErrTwoFactorRequired):
		return http.StatusUnauthorized, "TWO_FACTOR_REQUIRED", domainErrors.ErrTwoFactorRequired.Error()
	case errors.Is(err, domainErrors.ErrInvalid2FACode):
		return http.StatusUnauthorized, "INVALID_2FA_CODE", domainErrors.ErrInvalid2FACode.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", domainErrors.ErrInvalidCredentials.Error()
	case domainErrors.IsUnauthorized(err):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case domainErrors.IsConflict(err):
		return http.StatusConflict, "CONFLICT", err.Error()
	case domainErrors.IsNotFound(err):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}
