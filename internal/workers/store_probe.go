package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-medlux/internal/logger"
)

// DefaultProbeInterval is used when the configured interval is not positive.
const DefaultProbeInterval = 15 * time.Second

// probeTimeout bounds a single ping.
const probeTimeout = 3 * time.Second

// StoreProbe pings the store on a ticker and reports the result. It probes
// once immediately so the reported status is accurate right after startup.
type StoreProbe struct {
	checker  Checker
	reporter HealthReporter
	interval time.Duration

	logger *logger.Logger
}

// NewStoreProbe returns a probe. A nil reporter only logs status changes.
func NewStoreProbe(checker Checker, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *StoreProbe {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &StoreProbe{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (p *StoreProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := p.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = p.probe(ctx, last)
		}
	}
}

// probe runs one check and returns the new state. prev is nil before the
// first probe.
func (p *StoreProbe) probe(ctx context.Context, prev *bool) *bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.checker.Check(ctx)
	serving := err == nil

	if p.reporter != nil {
		p.reporter.SetServing(serving)
	}

	if prev == nil || *prev != serving {
		if serving {
			p.logger.Info().Str("func", "StoreProbe.probe").Msg("store is reachable")
		} else {
			p.logger.Err(err).Str("func", "StoreProbe.probe").Msg("store is unreachable")
		}
	}
	return &serving
}
