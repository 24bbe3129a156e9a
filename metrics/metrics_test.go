package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMigration(t *testing.T) {
	m := NewManager()

	m.ObserveMigration(OpMigrate, 12, time.Second, nil)
	m.ObserveMigration(OpMigrate, 3, time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.migrationRuns.WithLabelValues(OpMigrate, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.migrationRuns.WithLabelValues(OpMigrate, "error")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.migrationRecords.WithLabelValues(OpMigrate)))
}

func TestObserveCapture(t *testing.T) {
	m := NewManager()

	m.ObserveCapture(CaptureRecorded)
	m.ObserveCapture(CaptureDuplicate)
	m.ObserveCapture(CaptureDuplicate)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.captureEvents.WithLabelValues(CaptureRecorded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.captureEvents.WithLabelValues(CaptureDuplicate)))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewManager()
	m.ObserveHTTP(http.MethodPost, "/migrarProfesionales", http.StatusOK, 20*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `kympulse_http_requests_total{method="POST",route="/migrarProfesionales",status="200"} 1`)
}
