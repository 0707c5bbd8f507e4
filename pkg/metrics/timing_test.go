package metrics

import (
	"testing"
	"time"
)

func TestRecordAndStats(t *testing.T) {
	m := newTimingMetric("test")
	m.Record(2 * time.Millisecond)
	m.Record(4 * time.Millisecond)

	s := m.Stats()
	if s.Name != "test" || s.Count != 2 {
		t.Fatalf("stats = %+v", s)
	}
	if s.TotalMs != 6 || s.AvgMs != 3 || s.MaxMs != 4 || s.MinMs != 2 {
		t.Errorf("stats = %+v, want total 6 avg 3 max 4 min 2", s)
	}

	m.Reset()
	if m.Count() != 0 || m.Stats().MaxMs != 0 {
		t.Errorf("Reset left %+v", m.Stats())
	}
}

func TestDisabledRecordsNothing(t *testing.T) {
	SetEnabled(false)
	t.Cleanup(func() { SetEnabled(true) })

	m := newTimingMetric("off")
	m.Record(time.Millisecond)
	Timer(m)()
	if m.Count() != 0 {
		t.Errorf("disabled metric counted %d", m.Count())
	}
}

func TestTimerWithCallback(t *testing.T) {
	SetEnabled(true)
	m := newTimingMetric("cb")

	var got time.Duration
	called := false
	TimerWithCallback(m, func(d time.Duration) { got, called = d, true })()
	if !called || got < 0 || m.Count() != 1 {
		t.Errorf("callback called=%v d=%v count=%d", called, got, m.Count())
	}
}

func TestAllTimingStatsSkipsEmpty(t *testing.T) {
	SetEnabled(true)
	ResetAll()
	t.Cleanup(ResetAll)

	Layout.Record(time.Millisecond)
	stats := AllTimingStats()
	if len(stats) != 1 || stats[0].Name != "layout" {
		t.Errorf("AllTimingStats() = %+v", stats)
	}
}
