package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveRequest("GET", "", 404, 3*time.Millisecond)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, before+1, after)
}

func TestRequestStarted(t *testing.T) {
	base := testutil.ToFloat64(httpInFlight)
	done := RequestStarted()
	assert.Equal(t, base+1, testutil.ToFloat64(httpInFlight))
	done()
	assert.Equal(t, base, testutil.ToFloat64(httpInFlight))
}

func TestHandlerExposesAuditFailures(t *testing.T) {
	AuditWriteFailures.Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pdrims_audit_write_failures_total")
}
