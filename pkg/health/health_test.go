package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json via query", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusHealthy, resp.Status)
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	refused := func(context.Context) error { return errors.New("dial tcp 10.0.0.1:465: connection refused") }

	tests := []struct {
		name       string
		checks     health.Checks
		wantStatus int
		wantBody   string
	}{
		{"no checks", nil, http.StatusOK, "OK"},
		{"all healthy", health.Checks{"smtp": ok}, http.StatusOK, "OK"},
		{"one failing", health.Checks{"smtp": refused, "other": ok}, http.StatusServiceUnavailable, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			health.ReadinessHandler(tt.checks)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantBody, rec.Body.String())
		})
	}

	t.Run("json reports per-check errors", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"smtp": refused})(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Contains(t, resp.Checks["smtp"].Error, "connection refused")
	})
}

func TestReadinessHandler_Timeout(t *testing.T) {
	t.Parallel()

	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	req := httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil)
	rec := httptest.NewRecorder()
	health.ReadinessHandler(health.Checks{"smtp": slow}, health.WithTimeout(10*time.Millisecond))(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, health.StatusUnhealthy, resp.Status)
	assert.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["smtp"].Error)
}
