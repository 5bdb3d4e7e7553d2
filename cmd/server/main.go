package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Central-IR/contas-receber/internal/config"
	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/repository"
	"github.com/Central-IR/contas-receber/internal/router"
	"github.com/Central-IR/contas-receber/internal/service"
	"github.com/Central-IR/contas-receber/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker pool and schedulers are wired here (composition root) so they
	// have full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	freteCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	freteClient := infra.NewFreteClient(cfg.FreteAPIURL)
	mailer := infra.NewMailer(cfg)

	contaRepo := repository.NewContaRepository(db)
	syncSvc := service.NewSyncService(contaRepo, freteClient, freteCB)
	dispatcher := worker.NewDispatcher(rdb)

	worker.StartWorkerPool(ctx, rdb, worker.Handlers{
		Sincronizacao: worker.NewSincronizacaoWorker(syncSvc, rdb),
		Alerta:        worker.NewAlertaWorker(contaRepo, mailer),
	}, cfg.WorkerPoolSize)

	worker.StartSyncCron(ctx, worker.SyncCronConfig{
		Svc:      syncSvc,
		CB:       freteCB,
		Token:    cfg.FreteAPIToken,
		Interval: time.Duration(cfg.SyncIntervalSeconds) * time.Second,
	})

	alertaCron := worker.StartAlertaCron(ctx, worker.AlertaCronConfig{
		Dispatcher: dispatcher,
		Schedule:   cfg.AlertaCron,
		Destino:    cfg.AlertaEmailDestino,
	})

	r := router.New(cfg, db, rdb, freteCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("contas a receber backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	if alertaCron != nil {
		alertaCron.Stop()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
