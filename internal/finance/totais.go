package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscopoVencido define sobre qual conjunto o total vencido é somado.
type EscopoVencido int

const (
	// VencidoGlobal soma o vencido sobre TODAS as contas, independente do mês
	// em exibição: uma nota não deixa de estar vencida porque o calendário
	// virou. É a política padrão do sistema.
	VencidoGlobal EscopoVencido = iota
	// VencidoPeriodo restringe o vencido ao próprio bucket de período, como
	// algumas variantes antigas do painel faziam.
	VencidoPeriodo
)

// Totais são os quatro cartões do dashboard para um período.
type Totais struct {
	Faturado decimal.Decimal
	Pago     decimal.Decimal
	Vencido  decimal.Decimal
	AReceber decimal.Decimal
	// Inconsistente indica pago > faturado no período — o chamador deve
	// sinalizar o problema de dados em vez de exibir silenciosamente.
	Inconsistente bool
}

// CalcularTotais computa os totais do dashboard para (ano, mês).
//
// Faturado e Pago somam apenas o bucket do período (por data de emissão),
// excluindo notas de tipo especial. Nota quitada entra em Pago pelo valor
// cheio; nota ainda aberta entra pelo valor_pago parcial. AReceber é sempre
// Faturado - Pago — nunca somado à parte — para que a identidade feche exata
// mesmo com pagamento parcial. O vencido segue o escopo pedido; notas
// especiais nunca entram.
func CalcularTotais(regs []Registro, ano int, mes time.Month, hoje time.Time, escopo EscopoVencido) Totais {
	t := Totais{
		Faturado: decimal.Zero,
		Pago:     decimal.Zero,
		Vencido:  decimal.Zero,
	}

	periodo := FiltrarPorPeriodo(regs, ano, mes, CampoEmissao)
	for _, r := range periodo {
		st := ResolverStatus(r, hoje)
		if st == StatusEspecial {
			continue
		}
		t.Faturado = t.Faturado.Add(r.Valor)
		if st == StatusPago {
			t.Pago = t.Pago.Add(r.Valor)
		} else if r.ValorPago.IsPositive() {
			t.Pago = t.Pago.Add(r.ValorPago)
		}
		if escopo == VencidoPeriodo && st == StatusVencido {
			t.Vencido = t.Vencido.Add(r.Valor)
		}
	}

	if escopo == VencidoGlobal {
		for _, r := range regs {
			if ResolverStatus(r, hoje) == StatusVencido {
				t.Vencido = t.Vencido.Add(r.Valor)
			}
		}
	}

	t.AReceber = t.Faturado.Sub(t.Pago)
	t.Inconsistente = t.AReceber.IsNegative()
	return t
}
