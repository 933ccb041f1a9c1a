package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEngineRun(t *testing.T) {
	r := NewRegistry()

	r.RecordEngineRun("mocus", 5*time.Millisecond, 4, nil)
	r.RecordEngineRun("mocus", 7*time.Millisecond, 4, nil)
	r.RecordEngineRun("bdd", 2*time.Millisecond, 0, errors.New("boom"))

	if got := testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("mocus", "success")); got != 2 {
		t.Errorf("mocus success count = %f, want 2", got)
	}
	if got := testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("bdd", "error")); got != 1 {
		t.Errorf("bdd error count = %f, want 1", got)
	}
}

func TestRecordComparison_Mismatch(t *testing.T) {
	r := NewRegistry()

	r.RecordComparison(time.Millisecond, time.Millisecond, 4, 3, false)
	r.RecordComparison(time.Millisecond, time.Millisecond, 4, 4, true)

	if got := testutil.ToFloat64(r.ComparisonMismatches); got != 1 {
		t.Errorf("mismatch count = %f, want 1", got)
	}
}

func TestRecordSimulation(t *testing.T) {
	r := NewRegistry()

	r.RecordSimulation(time.Second, 100000)
	r.RecordSimulation(time.Second, 50000)

	if got := testutil.ToFloat64(r.SimulationTrials); got != 150000 {
		t.Errorf("trial count = %f, want 150000", got)
	}
}
