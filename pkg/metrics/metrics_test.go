package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSettlement(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "parking")

	m.RecordSettlement("paid", 12.5, "USD")
	m.RecordSettlement("paid", 2, "USD")
	m.RecordSettlement("admin_release", 0, "USD")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SettlementsTotal.WithLabelValues("paid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SettlementsTotal.WithLabelValues("admin_release")))
	assert.Equal(t, 14.5, testutil.ToFloat64(m.FeesChargedTotal.WithLabelValues("USD")))
}

func TestObserveHTTPRequestAndDB(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "parking")

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/slots", http.StatusOK, 10*time.Millisecond)
	m.ObserveDBQuery("select", errors.New("boom"), time.Millisecond)
	m.RecordRegistration("ok")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/slots", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues("ok")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordRegistration("ok")
		m.RecordSettlement("paid", 1, "USD")
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("select", nil, time.Second)
	})
}
