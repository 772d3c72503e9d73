package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestHandler() *GeneratorHandler {
	svc := service.NewGeneratorService(generator.New(generator.NewSeededRand(3)), service.StandardDefaults())
	return NewGeneratorHandler(svc)
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLength: 12},
		{name: "empty object uses defaults", body: `{}`, wantStatus: http.StatusOK, wantLength: 12},
		{name: "custom length", body: `{"length":20,"symbols":true}`, wantStatus: http.StatusOK, wantLength: 20},
		{name: "length clamped", body: `{"length":99}`, wantStatus: http.StatusOK, wantLength: 32},
		{name: "invalid json", body: `{"length":`, wantStatus: http.StatusBadRequest},
		{name: "invalid count", body: `{"count":100}`, wantStatus: http.StatusBadRequest},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantLength, resp.Length)
			require.Len(t, resp.Passwords, 1)
			assert.Len(t, resp.Passwords[0].Password, tt.wantLength)
			assert.True(t, resp.Passwords[0].Copyable)
		})
	}
}

func TestHandleGenerate_NoClasses(t *testing.T) {
	body := `{"letters":false,"numbers":false,"symbols":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().HandleGenerate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, generator.NoClassesSelected, resp.Passwords[0].Password)
	assert.False(t, resp.Passwords[0].Copyable)
	assert.Equal(t, "No Password", resp.Passwords[0].Strength.Label)
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"length":` + strings.Repeat(" ", maxBodyBytes+1) + `12}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleStrength(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       model.StrengthResponse
	}{
		{
			name:       "strong password",
			body:       `{"password":"Abcdefgh123!"}`,
			wantStatus: http.StatusOK,
			want:       model.StrengthResponse{Score: 6, Label: "Strong", Color: "bg-green-500"},
		},
		{
			name:       "weak password",
			body:       `{"password":"ab"}`,
			wantStatus: http.StatusOK,
			want:       model.StrengthResponse{Score: 1, Label: "Weak", Color: "bg-red-500"},
		},
		{
			name:       "no password",
			body:       `{}`,
			wantStatus: http.StatusOK,
			want:       model.StrengthResponse{Score: 0, Label: "No Password", Color: "bg-gray-400"},
		},
		{
			name:       "too long",
			body:       `{"password":"` + strings.Repeat("x", 2000) + `"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleStrength(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp model.StrengthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
