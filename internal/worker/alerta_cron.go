package worker

// alerta_cron.go
// Daily scheduler for the overdue-summary email. The schedule itself only
// enqueues a job; the worker pool does the heavy lifting.

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// AlertaCronConfig holds the alert schedule dependencies.
type AlertaCronConfig struct {
	Dispatcher *Dispatcher
	Schedule   string // standard 5-field cron expression
	Destino    string
}

// StartAlertaCron schedules the daily overdue alert in America/Sao_Paulo.
// Disabled when no recipient is configured. Returns the scheduler so the
// caller can stop it on shutdown.
func StartAlertaCron(ctx context.Context, cfg AlertaCronConfig) *cron.Cron {
	if cfg.Destino == "" {
		log.Warn().Msg("alerta_cron: ALERTA_EMAIL_DESTINO not set, daily alert disabled")
		return nil
	}

	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		if err := cfg.Dispatcher.EnqueueAlerta(ctx, cfg.Destino); err != nil {
			log.Error().Err(err).Msg("alerta_cron: failed to enqueue alert")
		}
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", cfg.Schedule).Msg("alerta_cron: invalid cron expression")
		return nil
	}

	c.Start()
	log.Info().Str("schedule", cfg.Schedule).Str("destino", cfg.Destino).Msg("alerta_cron: started")
	return c
}
