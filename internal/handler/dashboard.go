package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Central-IR/contas-receber/internal/apierror"
	"github.com/Central-IR/contas-receber/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Totais GET /api/dashboard?mes=&ano= — defaults to the current month.
func (h *DashboardHandler) Totais(c *gin.Context) {
	agora := time.Now()
	ano, mes := agora.Year(), int(agora.Month())

	if v := c.Query("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			c.JSON(http.StatusBadRequest, apierror.New("Ano inválido"))
			return
		}
		ano = n
	}
	if v := c.Query("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, apierror.New("Mês inválido"))
			return
		}
		mes = n
	}

	resp, err := h.svc.Totais(c.Request.Context(), ano, mes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
