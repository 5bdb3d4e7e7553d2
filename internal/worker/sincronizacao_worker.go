package worker

// sincronizacao_worker.go
// Processes freight sync jobs from QueueSincronizacao: pulls delivered
// freights from the external service and imports the ones not yet known
// as contas PENDENTE.

import (
	"context"
	"encoding/json"

	"github.com/Central-IR/contas-receber/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxSincronizacaoTentativas bounds re-enqueues before a job lands in the DLQ.
const MaxSincronizacaoTentativas = 3

// SincronizacaoWorker runs the freight import through the sync service.
type SincronizacaoWorker struct {
	svc service.SyncService
	rdb *redis.Client
}

func NewSincronizacaoWorker(svc service.SyncService, rdb *redis.Client) *SincronizacaoWorker {
	return &SincronizacaoWorker{svc: svc, rdb: rdb}
}

// Process executes one sync pass. Failures (freight service down, circuit
// breaker open) re-enqueue the job up to MaxSincronizacaoTentativas.
func (w *SincronizacaoWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload SincronizacaoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("sincronizacao_worker: invalid payload")
		return
	}

	resumo, err := w.svc.Sincronizar(ctx, payload.Token)
	if err != nil {
		payload.Tentativa++
		if payload.Tentativa >= MaxSincronizacaoTentativas {
			data, _ := json.Marshal(payload)
			SendToDLQ(ctx, w.rdb, QueueSincronizacao, "sincronizacao", data,
				err.Error(), payload.Tentativa)
			return
		}

		log.Warn().
			Err(err).
			Int("tentativa", payload.Tentativa).
			Msg("sincronizacao_worker: sync failed, re-enqueueing")
		data, merr := json.Marshal(payload)
		if merr != nil {
			return
		}
		job, merr := json.Marshal(Job{Type: "sincronizacao", Payload: data})
		if merr != nil {
			return
		}
		if perr := w.rdb.LPush(ctx, QueueSincronizacao, job).Err(); perr != nil {
			log.Error().Err(perr).Msg("sincronizacao_worker: failed to re-enqueue")
		}
		return
	}

	log.Info().
		Int("importadas", resumo.Importadas).
		Int("ignoradas", resumo.Ignoradas).
		Msg("sincronizacao_worker: sync completed")
}
