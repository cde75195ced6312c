package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestStarted_RecordsRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/pets", "200"))

	done := RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done("GET", "/api/pets", http.StatusOK)

	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/pets", "200")))
}

func TestRecordEvent_Outcomes(t *testing.T) {
	RecordEvent("pet.status_changed", nil)
	RecordEvent("pet.status_changed", errors.New("broker down"))

	assert.Equal(t, float64(1), testutil.ToFloat64(domainEvents.WithLabelValues("pet.status_changed", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(domainEvents.WithLabelValues("pet.status_changed", "error")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordEvent("donation.created", nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pet_adoption_events_published_total")
}
