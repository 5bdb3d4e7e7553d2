package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	QueueSincronizacao = "jobs:sincronizacao"
	QueueAlerta        = "jobs:alerta"

	// syncQueuedLock guarantees at most one sync job waiting in the queue —
	// every list request tries to enqueue one, and they would pile up.
	syncQueuedLock    = "jobs:sincronizacao:queued"
	syncQueuedLockTTL = time.Minute
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SincronizacaoPayload carries the session token the sync forwards to the
// freight service.
type SincronizacaoPayload struct {
	Token     string `json:"token"`
	Tentativa int    `json:"tentativa"`
}

// AlertaPayload addresses the overdue-summary email.
type AlertaPayload struct {
	Destino string `json:"destino"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueSincronizacao pushes a freight sync job, unless one is already
// waiting to be picked up.
func (d *Dispatcher) EnqueueSincronizacao(ctx context.Context, sessionToken string) error {
	ok, err := d.rdb.SetNX(ctx, syncQueuedLock, 1, syncQueuedLockTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return nil // already queued
	}
	return d.enqueue(ctx, QueueSincronizacao, "sincronizacao", SincronizacaoPayload{Token: sessionToken})
}

// EnqueueAlerta pushes an overdue-alert email job.
func (d *Dispatcher) EnqueueAlerta(ctx context.Context, destino string) error {
	return d.enqueue(ctx, QueueAlerta, "alerta", AlertaPayload{Destino: destino})
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// releaseSyncLock frees the dedup lock once a sync job leaves the queue.
func releaseSyncLock(ctx context.Context, rdb *redis.Client) {
	rdb.Del(ctx, syncQueuedLock)
}
