package health

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Status of a single check or of the whole report
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult is the outcome of one check
type CheckResult struct {
	Name       string  `json:"name"`
	Status     Status  `json:"status"`
	Message    string  `json:"message,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

// Checker is a named health check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type funcChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

func (c funcChecker) Name() string                          { return c.name }
func (c funcChecker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// NewChecker names fn as a Checker
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return funcChecker{name: name, fn: fn}
}

// Pinger is implemented by the history store and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingCheck is unhealthy when p does not answer within timeout
func PingCheck(name string, p Pinger, timeout time.Duration) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := p.PingContext(ctx); err != nil {
			return CheckResult{Name: name, Status: StatusUnhealthy, Message: err.Error()}
		}
		return CheckResult{Name: name, Status: StatusHealthy, Message: "ping ok"}
	})
}

// Optional reports failures of c as degraded instead of unhealthy. It is
// used for dependencies the calculator can work without, like the history.
func Optional(c Checker) Checker {
	return NewChecker(c.Name(), func(ctx context.Context) CheckResult {
		r := c.Check(ctx)
		if r.Status == StatusUnhealthy {
			r.Status = StatusDegraded
		}
		return r
	})
}

// Report is the answer of GET /api/v1/health
type Report struct {
	Service       string        `json:"service"`
	Version       string        `json:"version"`
	Status        Status        `json:"status"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	Checks        []CheckResult `json:"checks"`
}

// Healthy reports whether every check passed
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Registry runs the registered checks concurrently
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	service  string
	version  string
	started  time.Time
}

// NewRegistry creates an empty registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		service:  service,
		version:  version,
		started:  time.Now(),
	}
}

// Register adds c, replacing a checker with the same name
func (r *Registry) Register(c Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[c.Name()] = c
}

// Check runs all checks. The report is unhealthy if any check is, degraded
// if any check is degraded, healthy otherwise. Checks are sorted by name.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			start := time.Now()
			res := c.Check(ctx)
			res.DurationMS = float64(time.Since(start).Microseconds()) / 1000
			if res.Name == "" {
				res.Name = c.Name()
			}
			results[i] = res
		}(i, c)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	status := StatusHealthy
	for _, res := range results {
		if res.Status == StatusUnhealthy {
			status = StatusUnhealthy
			break
		}
		if res.Status == StatusDegraded {
			status = StatusDegraded
		}
	}

	return &Report{
		Service:       r.service,
		Version:       r.version,
		Status:        status,
		UptimeSeconds: int64(time.Since(r.started).Seconds()),
		Checks:        results,
	}
}
