package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := New()
	m.ObserveOperation("CreateExpense", time.Now(), nil)
	m.ObserveOperation("CreateExpense", time.Now(), nil)
	m.ObserveOperation("CreateExpense", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("CreateExpense", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("CreateExpense", OutcomeError)))
}

func TestCounters(t *testing.T) {
	m := New()
	m.IncInvariantViolation()
	m.IncPublishFailure()
	m.IncPublishFailure()
	m.ObserveLockWait(time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.invariantViolations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.publishFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("x", time.Now(), nil)
		m.ObserveLockWait(time.Second)
		m.IncInvariantViolation()
		m.IncPublishFailure()
	})
}

func TestHandlerExposesLedgerMetrics(t *testing.T) {
	m := New()
	m.ObserveOperation("CreatePayment", time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `splitledger_ledger_operations_total{operation="CreatePayment",outcome="ok"} 1`)
}
