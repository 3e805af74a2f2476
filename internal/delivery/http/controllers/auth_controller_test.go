package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	registerResult *domain.AuthResponse
	registerErr    error
	loginResult    *domain.AuthResponse
	loginErr       error

	lastRegisterEmail string
	lastLoginEmail    string
}

func (f *fakeAuthService) Register(ctx context.Context, email, password, name string) (*domain.AuthResponse, error) {
	f.lastRegisterEmail = email
	return f.registerResult, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	f.lastLoginEmail = email
	return f.loginResult, f.loginErr
}

func newAuthMux(svc domain.AuthService) *http.ServeMux {
	c := NewAuthController(testLogger, svc)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", c.Register)
	mux.HandleFunc("POST /api/auth/login", c.Login)
	return mux
}

func sampleAuthResponse() *domain.AuthResponse {
	return &domain.AuthResponse{
		AccessToken: "token-1",
		User: domain.PublicUser{
			ID:        "user-1",
			Email:     "ada@example.com",
			Name:      "Ada",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestAuthController_Register(t *testing.T) {
	t.Run("success is 201 without a password field", func(t *testing.T) {
		svc := &fakeAuthService{registerResult: sampleAuthResponse()}
		body := `{"email":"ada@example.com","password":"secret123","name":"Ada"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		newAuthMux(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "access_token")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeAuthService{registerErr: domain.ErrDuplicateEmail}
		body := `{"email":"ada@example.com","password":"secret123","name":"Ada"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		newAuthMux(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeConflict, resp.Error.Code)
	})

	t.Run("invalid body is 400 and never reaches the service", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"bad email", `{"email":"not-an-email","password":"secret123","name":"Ada"}`},
			{"short password", `{"email":"ada@example.com","password":"abc","name":"Ada"}`},
			{"missing name", `{"email":"ada@example.com","password":"secret123"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := &fakeAuthService{}
				req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
				rec := httptest.NewRecorder()

				newAuthMux(svc).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Empty(t, svc.lastRegisterEmail)
			})
		}
	})
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success is 200 with token", func(t *testing.T) {
		svc := &fakeAuthService{loginResult: sampleAuthResponse()}
		body := `{"email":"ada@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		newAuthMux(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "token-1")
	})

	t.Run("bad credentials map to 401 with a uniform body", func(t *testing.T) {
		svc := &fakeAuthService{loginErr: domain.ErrInvalidCredentials}

		bodies := []string{
			`{"email":"ada@example.com","password":"wrong"}`,
			`{"email":"nobody@example.com","password":"whatever"}`,
		}
		responses := make([]string, 0, len(bodies))
		for _, body := range bodies {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
			rec := httptest.NewRecorder()
			newAuthMux(svc).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			responses = append(responses, rec.Body.String())
		}
		assert.Equal(t, responses[0], responses[1], "wrong password and unknown email must be indistinguishable")
	})
}
