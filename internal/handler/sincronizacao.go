package handler

import (
	"net/http"

	"github.com/Central-IR/contas-receber/internal/middleware"
	"github.com/Central-IR/contas-receber/internal/worker"

	"github.com/gin-gonic/gin"
)

type SincronizacaoHandler struct{ dispatcher *worker.Dispatcher }

func NewSincronizacaoHandler(dispatcher *worker.Dispatcher) *SincronizacaoHandler {
	return &SincronizacaoHandler{dispatcher: dispatcher}
}

// Sincronizar POST /api/sincronizar — enqueues a freight import with the
// caller's own session token and returns immediately; a sync already waiting
// in the queue is not duplicated.
func (h *SincronizacaoHandler) Sincronizar(c *gin.Context) {
	if err := h.dispatcher.EnqueueSincronizacao(c.Request.Context(), middleware.GetSessionToken(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Sincronização agendada"})
}
