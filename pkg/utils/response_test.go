package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      any
		expectedBody string
	}{
		{
			name:         "payload encoded",
			code:         http.StatusOK,
			payload:      map[string]string{"status": "waiting"},
			expectedBody: `{"status":"waiting"}`,
		},
		{
			name:    "nil payload writes no body",
			code:    http.StatusNoContent,
			payload: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusUnauthorized, "Invalid signature")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Invalid signature", resp.Error)
	assert.False(t, resp.Success)
}

func TestRespondWithSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithSuccess(w, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}
