// File: internal/handler/http/auth_handler.go
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/service"
	"github.com/overskilled/backend-movie-api/internal/utils/metrics"
)

// AuthHandler exposes registration, login and two-factor endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	twoFA  *service.TwoFactorService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, twoFA *service.TwoFactorService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, twoFA: twoFA, logger: logger}
}

// Register handles POST /users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	userID, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmailExists) {
			metrics.RegistrationAttemptsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationAttemptsTotal.WithLabelValues("failure").Inc()
		}
		RespondWithError(c, err, h.logger)
		return
	}

	metrics.RegistrationAttemptsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  userID.String(),
	})
}

// LoginEmail handles POST /users/login/email.
func (h *AuthHandler) LoginEmail(c *gin.Context) {
	var req models.EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	result, err := h.auth.LoginByEmail(c.Request.Context(), req.Email, req.Password)
	h.respondLogin(c, result, err)
}

// LoginPhone handles POST /users/login/phone.
func (h *AuthHandler) LoginPhone(c *gin.Context) {
	var req models.PhoneLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	result, err := h.auth.LoginByPhone(c.Request.Context(), req.PhoneNumber, req.Password)
	h.respondLogin(c, result, err)
}

func (h *AuthHandler) respondLogin(c *gin.Context, result *models.LoginResult, err error) {
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		RespondWithError(c, err, h.logger)
		return
	}

	if result.TwoFARequired {
		metrics.LoginAttemptsTotal.WithLabelValues("two_fa_pending").Inc()
		c.JSON(http.StatusOK, gin.H{
			"twoFARequired": true,
			"tempToken":     result.TempToken,
			"userId":        result.UserID.String(),
		})
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"twoFARequired": false,
		"accessToken":   result.AccessToken,
		"refreshToken":  result.RefreshToken,
		"userId":        result.UserID.String(),
	})
}

// Generate2FA handles POST /users/2fa/generate. It requires a full token;
// the target user comes from the request body.
func (h *AuthHandler) Generate2FA(c *gin.Context) {
	var req models.Generate2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondWithValidationError(c, err)
		return
	}

	secret, err := h.twoFA.GenerateSecret(c.Request.Context(), userID)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, secret)
}

// Verify2FA handles POST /users/2fa/verify. It requires a pending token
// minted by a prior password login.
func (h *AuthHandler) Verify2FA(c *gin.Context) {
	var req models.Verify2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondWithValidationError(c, err)
		return
	}

	pair, err := h.twoFA.VerifyCode(c.Request.Context(), userID, req.Token)
	if err != nil {
		metrics.TwoFAVerificationsTotal.WithLabelValues("failure").Inc()
		RespondWithError(c, err, h.logger)
		return
	}

	metrics.TwoFAVerificationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, pair)
}

// Logout handles POST /users/logout. Tokens are not tracked server-side, so
// this is a stateless acknowledgement; clients discard their tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
