package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetracker/internal/services"
)

func TestHealth_ReportsCounts(t *testing.T) {
	svc := services.NewTrackerService()
	svc.EnsureUser("u1")
	svc.EnsureUser("u2")
	svc.ClaimReminder("u1", "h1", "Read", time.Now())
	hc := NewHealthController(svc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["users"])
	assert.Equal(t, float64(1), body["reminder_records"])
	assert.GreaterOrEqual(t, body["uptime_seconds"].(float64), float64(0))
}

func TestHealth_RejectsNonGet(t *testing.T) {
	hc := NewHealthController(services.NewTrackerService())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Health(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m42s", formatDuration(42*time.Second))
	assert.Equal(t, "2h5m0s", formatDuration(2*time.Hour+5*time.Minute))
}
