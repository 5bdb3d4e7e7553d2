package worker

// sync_cron.go
// Background goroutine that periodically imports delivered freights using
// the service account token. Uses the Circuit Breaker state to avoid
// hammering a downed freight service.

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/service"

	"github.com/rs/zerolog/log"
)

// SyncCronConfig holds all dependencies for the sync goroutine.
type SyncCronConfig struct {
	Svc      service.SyncService
	CB       *infra.CircuitBreaker
	Token    string
	Interval time.Duration
}

// StartSyncCron launches a background goroutine that runs a freight sync on
// every tick. A tick is skipped while the previous pass is still running, so
// passes never overlap. Disabled when no service token is configured.
func StartSyncCron(ctx context.Context, cfg SyncCronConfig) {
	if cfg.Token == "" {
		log.Warn().Msg("sync_cron: FRETE_API_TOKEN not set, periodic sync disabled")
		return
	}

	var emExecucao atomic.Bool

	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("sync_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("sync_cron: shutting down")
				return
			case <-ticker.C:
				if cfg.CB.State() == infra.CBOpen {
					log.Debug().Msg("sync_cron: circuit breaker is open, skipping tick")
					continue
				}
				if !emExecucao.CompareAndSwap(false, true) {
					log.Debug().Msg("sync_cron: previous sync still running, skipping tick")
					continue
				}
				go func() {
					defer emExecucao.Store(false)
					resumo, err := cfg.Svc.Sincronizar(ctx, cfg.Token)
					if err != nil {
						log.Error().Err(err).Msg("sync_cron: sync failed")
						return
					}
					if resumo.Importadas > 0 {
						log.Info().
							Int("importadas", resumo.Importadas).
							Int("ignoradas", resumo.Ignoradas).
							Msg("sync_cron: freights imported")
					}
				}()
			}
		}
	}()
}
