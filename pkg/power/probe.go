package power

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// Probe answers liveness with a single unprivileged echo probe
type Probe struct {
	timeout time.Duration
}

// NewProbe creates a probe, zero timeout defaults to one second
func NewProbe(timeout time.Duration) *Probe {
	if timeout == 0 {
		timeout = time.Second
	}
	return &Probe{timeout: timeout}
}

// Online sends one ping and reports whether a reply came back in time
func (p *Probe) Online(ctx context.Context, host string) bool {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}
