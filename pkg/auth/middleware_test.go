package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	userID := uuid.New()
	validToken := issueToken(t, testSecret, userID.String(), time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
		expectNext   bool
	}{
		{
			name:         "Valid bearer token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			authHeader:   "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			authHeader:   "Bearer not.a.token",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := r.Context().Value(UserIDKey).(uuid.UUID)
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			Middleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
