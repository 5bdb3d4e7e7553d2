package service

import (
	"time"

	"github.com/Central-IR/contas-receber/internal/dto"
	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/model"
)

// toRegistro normaliza o modelo persistido na forma que o motor de finance
// consome. É o único ponto do código que conhece os dois formatos.
func toRegistro(c model.ContaReceber) finance.Registro {
	banco := ""
	if c.Banco != nil {
		banco = *c.Banco
	}
	emissao := c.DataEmissao
	return finance.Registro{
		ID:               c.ID.String(),
		NumeroNF:         c.NumeroNF,
		Orgao:            c.Orgao,
		Vendedor:         c.Vendedor,
		Banco:            banco,
		Valor:            c.ValorNota,
		ValorPago:        c.ValorPago,
		TipoNF:           c.TipoNF,
		StatusArmazenado: c.Status,
		DataEmissao:      &emissao,
		DataVencimento:   c.DataVencimento,
		DataPagamento:    c.DataPagamento,
	}
}

func toRegistros(contas []model.ContaReceber) []finance.Registro {
	regs := make([]finance.Registro, 0, len(contas))
	for _, c := range contas {
		regs = append(regs, toRegistro(c))
	}
	return regs
}

func diaISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func toContaResponse(c model.ContaReceber, hoje time.Time) dto.ContaResponse {
	resp := dto.ContaResponse{
		ID:             c.ID.String(),
		NumeroNF:       c.NumeroNF,
		Orgao:          c.Orgao,
		Vendedor:       c.Vendedor,
		Banco:          c.Banco,
		ValorNota:      c.ValorNota,
		ValorPago:      c.ValorPago,
		DataEmissao:    c.DataEmissao.Format("2006-01-02"),
		DataVencimento: diaISO(c.DataVencimento),
		DataPagamento:  diaISO(c.DataPagamento),
		TipoNF:         c.TipoNF,
		Status:         c.Status,
		StatusExibicao: string(finance.ResolverStatus(toRegistro(c), hoje)),
		DadosFrete:     c.DadosFrete,
	}
	for _, o := range c.Observacoes {
		resp.Observacoes = append(resp.Observacoes, dto.ObservacaoResponse{
			ID:       o.ID.String(),
			Texto:    o.Texto,
			CriadaEm: o.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
