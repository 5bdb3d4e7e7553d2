package dto

import "github.com/shopspring/decimal"

// TotaisResponse são os quatro cartões do dashboard para o período pedido.
type TotaisResponse struct {
	Ano      int             `json:"ano"`
	Mes      int             `json:"mes"`
	Faturado decimal.Decimal `json:"faturado"`
	Pago     decimal.Decimal `json:"pago"`
	Vencido  decimal.Decimal `json:"vencido"`
	AReceber decimal.Decimal `json:"a_receber"`
	// Inconsistente indica pago acima do faturado no período (problema de
	// dados — ver logs do servidor).
	Inconsistente bool `json:"inconsistente,omitempty"`
}
