package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type pinger struct{ err error }

func (p pinger) PingContext(ctx context.Context) error { return p.err }

type slowPinger struct{}

func (slowPinger) PingContext(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func fixed(name string, status Status) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	})
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("sigfig", "test")
			for i, s := range tt.statuses {
				r.Register(fixed(string(rune('a'+i)), s))
			}
			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != (tt.want == StatusHealthy) {
				t.Error("Healthy() disagrees with status")
			}
		})
	}
}

func TestRegistry_ResultsNamedAndSorted(t *testing.T) {
	r := NewRegistry("sigfig", "1.0.0")
	r.Register(fixed("history", StatusHealthy))
	r.Register(fixed("engine", StatusHealthy))
	r.Register(fixed("engine", StatusDegraded))

	report := r.Check(context.Background())
	if report.Service != "sigfig" || report.Version != "1.0.0" {
		t.Errorf("report = %+v", report)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("checks = %d, want 2 (same name replaces)", len(report.Checks))
	}
	if report.Checks[0].Name != "engine" || report.Checks[1].Name != "history" {
		t.Errorf("order = %s, %s", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[0].Status != StatusDegraded {
		t.Error("re-registered checker was not replaced")
	}
}

func TestRegistry_ChecksRunConcurrently(t *testing.T) {
	r := NewRegistry("sigfig", "test")
	var running, peak int32
	for _, name := range []string{"a", "b", "c"} {
		r.Register(NewChecker(name, func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return CheckResult{Status: StatusHealthy}
		}))
	}

	r.Check(context.Background())
	if atomic.LoadInt32(&peak) < 2 {
		t.Errorf("peak concurrency = %d", peak)
	}
}

func TestPingCheck(t *testing.T) {
	ok := PingCheck("history", pinger{}, time.Second).Check(context.Background())
	if ok.Status != StatusHealthy || ok.Name != "history" {
		t.Errorf("healthy ping = %+v", ok)
	}

	failed := PingCheck("history", pinger{err: errors.New("database is locked")}, time.Second).Check(context.Background())
	if failed.Status != StatusUnhealthy || failed.Message != "database is locked" {
		t.Errorf("failed ping = %+v", failed)
	}

	slow := PingCheck("history", slowPinger{}, 10*time.Millisecond).Check(context.Background())
	if slow.Status != StatusUnhealthy {
		t.Errorf("slow ping = %+v", slow)
	}
}

func TestOptional(t *testing.T) {
	c := Optional(PingCheck("history", pinger{err: errors.New("gone")}, time.Second))
	if c.Name() != "history" {
		t.Errorf("name = %q", c.Name())
	}
	if r := c.Check(context.Background()); r.Status != StatusDegraded {
		t.Errorf("status = %v, want degraded", r.Status)
	}
	if r := Optional(fixed("x", StatusHealthy)).Check(context.Background()); r.Status != StatusHealthy {
		t.Errorf("healthy check changed to %v", r.Status)
	}
}
