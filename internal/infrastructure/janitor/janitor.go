// Package janitor removes expired refresh sessions in the background.
// Expired rows are already treated as absent by lookups; the sweep only
// keeps the table from growing without bound.
package janitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/api/metrics"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// Janitor periodically deletes expired refresh sessions.
type Janitor struct {
	sessions ports.TokenRepository
	interval time.Duration
	log      zerolog.Logger
}

func New(sessions ports.TokenRepository, interval time.Duration, log zerolog.Logger) *Janitor {
	return &Janitor{sessions: sessions, interval: interval, log: log}
}

// Start launches the sweep loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	go j.run(ctx)
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	removed, err := j.sessions.DeleteExpired(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if removed > 0 {
		metrics.SessionsSweptTotal.Add(float64(removed))
		j.log.Info().Int64("removed", removed).Msg("expired sessions swept")
	}
}
