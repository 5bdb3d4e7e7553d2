package finance

import "time"

// ResolverStatus deriva o status de exibição de um registro para um "hoje"
// fixo. Prioridade (primeira regra que casar vence):
//
//  1. tipo_nf fora do fluxo normal → ESPECIAL
//  2. data_pagamento preenchida, ou status armazenado PAGO → PAGO
//  3. data_vencimento em dia civil estritamente anterior a hoje → VENCIDO
//  4. caso contrário → PENDENTE
//
// Nota com vencimento igual a hoje ainda é PENDENTE — o corte é `<`, não `<=`.
// O status persistido nunca decide VENCIDO/PENDENTE: essas duas saídas são
// sempre recalculadas a partir das datas.
func ResolverStatus(r Registro, hoje time.Time) Status {
	if r.TipoNF != "" && r.TipoNF != TipoEnvio {
		return StatusEspecial
	}
	if r.DataPagamento != nil || r.StatusArmazenado == string(StatusPago) {
		return StatusPago
	}
	if r.DataVencimento != nil && AntesDoDia(*r.DataVencimento, hoje) {
		return StatusVencido
	}
	return StatusPendente
}
