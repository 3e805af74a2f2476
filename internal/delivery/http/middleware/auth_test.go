package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

func TestRequireAuth(t *testing.T) {
	okHandler := func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
		w.WriteHeader(http.StatusOK)
	}

	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
	}{
		{"valid token", "Bearer good-token", &fakeVerifier{userID: "user-1"}, http.StatusOK},
		{"missing header", "", &fakeVerifier{userID: "user-1"}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", &fakeVerifier{userID: "user-1"}, http.StatusUnauthorized},
		{"empty token", "Bearer ", &fakeVerifier{userID: "user-1"}, http.StatusUnauthorized},
		{"verifier rejects", "Bearer bad-token", &fakeVerifier{err: errors.New("expired")}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireAuth(tt.verifier)(okHandler)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
