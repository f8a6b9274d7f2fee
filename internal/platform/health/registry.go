// Package health keeps the tracker's readiness probes. The readiness
// endpoint reports ready only when the project store answers and webhook
// delivery has not tripped its breaker.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each probe. Zero leaves probes bounded only by the
// caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry implements [ports.HealthRegistry]. Probes run concurrently; when
// two share a name, the one registered last decides the reported result.
type Registry struct {
	mu      sync.RWMutex
	probes  []ports.HealthChecker
	timeout time.Duration
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a probe. Safe for concurrent use with CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.probes = append(r.probes, checker)
	r.mu.Unlock()
}

// CheckAll runs every probe at once and reports each by name; nil means
// healthy. The lock is not held while probes run.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	probes := append([]ports.HealthChecker(nil), r.probes...)
	r.mu.RUnlock()

	errs := make([]error, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			errs[i] = r.probe(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	report := make(map[string]error, len(probes))
	for i, p := range probes {
		report[p.Name()] = errs[i]
	}
	return report
}

func (r *Registry) probe(ctx context.Context, p ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return p.HealthCheck(ctx)
}
