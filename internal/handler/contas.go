package handler

import (
	"errors"
	"net/http"

	"github.com/Central-IR/contas-receber/internal/apierror"
	"github.com/Central-IR/contas-receber/internal/dto"
	"github.com/Central-IR/contas-receber/internal/middleware"
	"github.com/Central-IR/contas-receber/internal/service"
	"github.com/Central-IR/contas-receber/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ContasHandler struct {
	svc        service.ContaService
	dispatcher *worker.Dispatcher
}

func NewContasHandler(svc service.ContaService, dispatcher *worker.Dispatcher) *ContasHandler {
	return &ContasHandler{svc: svc, dispatcher: dispatcher}
}

// respondErr maps service errors onto the API error taxonomy.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContaNaoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New("Conta não encontrada"))
	case errors.Is(err, service.ErrNumeroNFDuplicado):
		c.JSON(http.StatusConflict, apierror.New("Já existe uma conta com esse número de NF"))
	default:
		_ = c.Error(err)
	}
}

// Listar GET /api/contas
func (h *ContasHandler) Listar(c *gin.Context) {
	var q dto.ListarContasQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	// Dispara uma sincronização de frete em segundo plano; a listagem nunca
	// espera por ela (o próximo poll do front pega o resultado).
	if h.dispatcher != nil {
		if err := h.dispatcher.EnqueueSincronizacao(c.Request.Context(), middleware.GetSessionToken(c)); err != nil {
			log.Debug().Err(err).Msg("contas: enqueue de sincronização falhou")
		}
	}

	resp, err := h.svc.Listar(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /api/contas/:id
func (h *ContasHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObterPorID(c.Request.Context(), id)
	if svcErr != nil {
		respondErr(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /api/contas
func (h *ContasHandler) Criar(c *gin.Context) {
	var req dto.CriarContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /api/contas/:id
func (h *ContasHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Atualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		respondErr(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarPagamento PATCH /api/contas/:id — a baixa de pagamento da tela
// principal; edição completa é o PUT.
func (h *ContasHandler) RegistrarPagamento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.RegistrarPagamento(c.Request.Context(), id, req)
	if svcErr != nil {
		respondErr(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /api/contas/:id
func (h *ContasHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Excluir(c.Request.Context(), id); svcErr != nil {
		respondErr(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conta excluída com sucesso"})
}

// AdicionarObservacao POST /api/contas/:id/observacoes
func (h *ContasHandler) AdicionarObservacao(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CriarObservacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AdicionarObservacao(c.Request.Context(), id, req)
	if svcErr != nil {
		respondErr(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
