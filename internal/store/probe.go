// ABOUTME: Health probe holding the backend's status triad
// ABOUTME: Fetches exactly once per probe instance, no polling or retry

package store

import (
	"context"
	"sync"

	"github.com/codementor/cli/internal/client"
)

// Probe issues a single health check on first use and holds the result.
// A new consumer wanting a fresh reading creates a new probe.
type Probe struct {
	mu   sync.Mutex
	api  *client.Client
	once sync.Once

	health  *client.HealthStatus
	loading bool
	err     string
}

// ProbeSnapshot is a point-in-time copy of the probe state
type ProbeSnapshot struct {
	Health  *client.HealthStatus
	Loading bool
	Err     string
}

// NewProbe creates a probe in the loading state
func NewProbe(api *client.Client) *Probe {
	return &Probe{api: api, loading: true}
}

// Check performs the health request. Only the first call fetches;
// subsequent calls are no-ops.
func (p *Probe) Check(ctx context.Context) {
	p.once.Do(func() {
		health, err := p.api.Health(ctx)

		p.mu.Lock()
		defer p.mu.Unlock()
		p.loading = false
		if err != nil {
			p.err = errorMessage(err, "Failed to check health")
			return
		}
		p.health = health
		p.err = ""
	})
}

// Snapshot returns a copy of the current probe state
func (p *Probe) Snapshot() ProbeSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := ProbeSnapshot{Loading: p.loading, Err: p.err}
	if p.health != nil {
		health := *p.health
		snap.Health = &health
	}
	return snap
}
