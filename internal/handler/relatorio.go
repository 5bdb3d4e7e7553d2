package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Central-IR/contas-receber/internal/apierror"
	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/model"
	"github.com/Central-IR/contas-receber/internal/repository"

	"github.com/gin-gonic/gin"
)

// RelatorioHandler generates the monthly receivables PDF straight from the
// repository.
type RelatorioHandler struct {
	repo        repository.ContaRepository
	storagePath string
}

func NewRelatorioHandler(repo repository.ContaRepository, storagePath string) *RelatorioHandler {
	return &RelatorioHandler{repo: repo, storagePath: storagePath}
}

// Gerar GET /api/relatorio?mes=&ano=
func (h *RelatorioHandler) Gerar(c *gin.Context) {
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

	contas, err := h.repo.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	hoje := agora
	porID := make(map[string]model.ContaReceber, len(contas))
	regs := make([]finance.Registro, 0, len(contas))
	for _, conta := range contas {
		porID[conta.ID.String()] = conta
		banco := ""
		if conta.Banco != nil {
			banco = *conta.Banco
		}
		emissao := conta.DataEmissao
		regs = append(regs, finance.Registro{
			ID:               conta.ID.String(),
			NumeroNF:         conta.NumeroNF,
			Orgao:            conta.Orgao,
			Vendedor:         conta.Vendedor,
			Banco:            banco,
			Valor:            conta.ValorNota,
			ValorPago:        conta.ValorPago,
			TipoNF:           conta.TipoNF,
			StatusArmazenado: conta.Status,
			DataEmissao:      &emissao,
			DataVencimento:   conta.DataVencimento,
			DataPagamento:    conta.DataPagamento,
		})
	}

	totais := finance.CalcularTotais(regs, ano, time.Month(mes), hoje, finance.VencidoGlobal)
	periodo := finance.OrdenarPorEmissaoDesc(finance.FiltrarPorPeriodo(regs, ano, time.Month(mes), finance.CampoEmissao))

	linhas := make([]infra.RelatorioLinha, 0, len(periodo))
	for _, r := range periodo {
		conta := porID[r.ID]
		linhas = append(linhas, infra.RelatorioLinha{
			NumeroNF:   r.NumeroNF,
			Orgao:      r.Orgao,
			Vendedor:   r.Vendedor,
			Banco:      r.Banco,
			Valor:      r.Valor,
			Emissao:    r.DataEmissao,
			Vencimento: conta.DataVencimento,
			Status:     string(finance.ResolverStatus(r, hoje)),
		})
	}

	path, err := infra.GerarRelatorioPDF(infra.RelatorioDados{
		Ano:    ano,
		Mes:    time.Month(mes),
		Linhas: linhas,
		Totais: totais,
	}, h.storagePath)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, "contas_receber_"+strconv.Itoa(ano)+"_"+strconv.Itoa(mes)+".pdf")
}
