// File: internal/handler/http/helpers_test.go
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/config"
	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/events/kafka"
	"github.com/overskilled/backend-movie-api/internal/infrastructure/security"
	"github.com/overskilled/backend-movie-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryUserRepository is an in-memory UserRepository honoring the store
// contract, so handler tests exercise the real services end to end.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainErrors.ErrEmailExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

func (r *memoryUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber {
			u := user
			return &u, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

func (r *memoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	return all, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *update.TwoFactorEnabled
	}
	if update.TwoFactorSecret != nil {
		secret := *update.TwoFactorSecret
		user.TwoFactorSecret = &secret
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now
	r.users[id] = user
	return &user, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domainErrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type testServer struct {
	router *gin.Engine
	users  *memoryUserRepository
	tokens *security.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := zap.NewNop()
	users := newMemoryUserRepository()
	passwords := security.NewBcryptPasswordService()
	totp := security.NewTOTPService("MoviePlatform")
	tokens, err := security.NewTokenManager(config.JWTConfig{
		Secret:               "handler-test-secret",
		Issuer:               "test",
		AccessTokenTTL:       15 * time.Minute,
		RefreshTokenTTL:      time.Hour,
		TwoFAPendingTokenTTL: 20 * time.Minute,
	})
	require.NoError(t, err)

	events := kafka.NopPublisher{}
	authService := service.NewAuthService(users, passwords, tokens, events, log)
	twoFAService := service.NewTwoFactorService(users, totp, tokens, events, log)
	userService := service.NewUserService(users, passwords, log)
	guard := service.NewAccessGuard(users, tokens, log)

	router := NewRouter(RouterDeps{
		Auth:   NewAuthHandler(authService, twoFAService, log),
		Users:  NewUserHandler(userService, log),
		Guard:  guard,
		Logger: log,
	})

	return &testServer{router: router, users: users, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// registerUser registers a user through the API and returns its id.
func (s *testServer) registerUser(t *testing.T, email, phone string) uuid.UUID {
	t.Helper()
	recorder := s.do(t, http.MethodPost, "/users/register", "", gin.H{
		"email":       email,
		"username":    "testuser",
		"phoneNumber": phone,
		"password":    "password123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	id, err := uuid.Parse(decodeBody(t, recorder)["userId"].(string))
	require.NoError(t, err)
	return id
}

// loginEmail performs an email login and returns the decoded response body.
func (s *testServer) loginEmail(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()
	recorder := s.do(t, http.MethodPost, "/users/login/email", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return decodeBody(t, recorder)
}
