package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarContaRequest struct {
	NumeroNF       string           `json:"numero_nf"       validate:"required,min=1,max=50"`
	ValorNota      decimal.Decimal  `json:"valor_nota"      validate:"min=0"`
	Orgao          string           `json:"orgao"           validate:"required,min=1"`
	Vendedor       string           `json:"vendedor"        validate:"required,min=1,max=100"`
	DataEmissao    string           `json:"data_emissao"    validate:"required,datetime=2006-01-02"`
	DataVencimento *string          `json:"data_vencimento" validate:"omitempty,datetime=2006-01-02"`
	ValorPago      *decimal.Decimal `json:"valor_pago"      validate:"omitempty"`
	DataPagamento  *string          `json:"data_pagamento"  validate:"omitempty,datetime=2006-01-02"`
	Banco          *string          `json:"banco"`
	TipoNF         *string          `json:"tipo_nf"         validate:"omitempty,oneof=ENVIO CANCELADA REMESSA_AMOSTRA SIMPLES_REMESSA DEVOLUCAO"`
	Status         *string          `json:"status"          validate:"omitempty,oneof=PAGO VENCIDO PENDENTE"`
	DadosFrete     json.RawMessage  `json:"dados_frete"`
}

// AtualizarContaRequest é a edição genérica: só os campos presentes mudam.
type AtualizarContaRequest struct {
	NumeroNF       *string          `json:"numero_nf"       validate:"omitempty,min=1,max=50"`
	ValorNota      *decimal.Decimal `json:"valor_nota"`
	Orgao          *string          `json:"orgao"           validate:"omitempty,min=1"`
	Vendedor       *string          `json:"vendedor"        validate:"omitempty,min=1,max=100"`
	DataEmissao    *string          `json:"data_emissao"    validate:"omitempty,datetime=2006-01-02"`
	DataVencimento *string          `json:"data_vencimento" validate:"omitempty,datetime=2006-01-02"`
	ValorPago      *decimal.Decimal `json:"valor_pago"`
	DataPagamento  *string          `json:"data_pagamento"  validate:"omitempty,datetime=2006-01-02"`
	Banco          *string          `json:"banco"`
	TipoNF         *string          `json:"tipo_nf"         validate:"omitempty,oneof=ENVIO CANCELADA REMESSA_AMOSTRA SIMPLES_REMESSA DEVOLUCAO"`
	Status         *string          `json:"status"          validate:"omitempty,oneof=PAGO VENCIDO PENDENTE"`
	DadosFrete     json.RawMessage  `json:"dados_frete"`
}

// RegistrarPagamentoRequest é o update parcial dedicado da baixa de pagamento.
type RegistrarPagamentoRequest struct {
	ValorPago     decimal.Decimal `json:"valor_pago"     validate:"min=0"`
	Banco         *string         `json:"banco"`
	DataPagamento *string         `json:"data_pagamento" validate:"omitempty,datetime=2006-01-02"`
	Status        *string         `json:"status"         validate:"omitempty,oneof=PAGO VENCIDO PENDENTE"`
}

type CriarObservacaoRequest struct {
	Texto string `json:"texto" validate:"required,min=1"`
}

// ListarContasQuery agrupa os filtros aceitos em GET /api/contas.
type ListarContasQuery struct {
	Busca    string `form:"busca"`
	Vendedor string `form:"vendedor"`
	Banco    string `form:"banco"`
	Status   string `form:"status" validate:"omitempty,oneof=PAGO VENCIDO PENDENTE ESPECIAL"`
	Mes      int    `form:"mes"    validate:"omitempty,min=1,max=12"`
	Ano      int    `form:"ano"    validate:"omitempty,min=2000,max=2100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ObservacaoResponse struct {
	ID       string `json:"id"`
	Texto    string `json:"texto"`
	CriadaEm string `json:"criada_em"`
}

type ContaResponse struct {
	ID             string          `json:"id"`
	NumeroNF       string          `json:"numero_nf"`
	Orgao          string          `json:"orgao"`
	Vendedor       string          `json:"vendedor"`
	Banco          *string         `json:"banco"`
	ValorNota      decimal.Decimal `json:"valor_nota"`
	ValorPago      decimal.Decimal `json:"valor_pago"`
	DataEmissao    string          `json:"data_emissao"`
	DataVencimento *string         `json:"data_vencimento"`
	DataPagamento  *string         `json:"data_pagamento"`
	TipoNF         string          `json:"tipo_nf"`
	Status         string          `json:"status"`
	// StatusExibicao é o status resolvido por datas — o que a tabela mostra.
	StatusExibicao string               `json:"status_exibicao"`
	DadosFrete     json.RawMessage      `json:"dados_frete,omitempty"`
	Observacoes    []ObservacaoResponse `json:"observacoes,omitempty"`
}

type SincronizacaoResponse struct {
	Importadas int `json:"importadas"`
	Ignoradas  int `json:"ignoradas"`
}
