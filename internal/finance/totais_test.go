package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contaDeMarco(t *testing.T, valor string) Registro {
	t.Helper()
	r := registro(valor)
	r.DataEmissao = dia(t, "2024-03-01")
	r.DataVencimento = dia(t, "2024-03-10")
	return r
}

func TestCalcularTotais_NotaVencidaEntraEmFaturadoEVencido(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	regs := []Registro{contaDeMarco(t, "100.00")}

	tt := CalcularTotais(regs, 2024, time.March, hoje, VencidoGlobal)

	assert.True(t, tt.Faturado.Equal(decimal.RequireFromString("100.00")), "faturado: %s", tt.Faturado)
	assert.True(t, tt.Pago.IsZero(), "pago: %s", tt.Pago)
	assert.True(t, tt.Vencido.Equal(decimal.RequireFromString("100.00")), "vencido: %s", tt.Vencido)
	assert.True(t, tt.AReceber.Equal(decimal.RequireFromString("100.00")), "a_receber: %s", tt.AReceber)
	assert.False(t, tt.Inconsistente)
}

func TestCalcularTotais_NotaPagaZeraVencidoEAReceber(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	r := contaDeMarco(t, "100.00")
	r.DataPagamento = dia(t, "2024-03-12")

	tt := CalcularTotais([]Registro{r}, 2024, time.March, hoje, VencidoGlobal)

	assert.True(t, tt.Faturado.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, tt.Pago.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, tt.Vencido.IsZero())
	assert.True(t, tt.AReceber.IsZero())
}

func TestCalcularTotais_DevolucaoForaDeTodosOsTotais(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	r := contaDeMarco(t, "250.00")
	r.TipoNF = "DEVOLUCAO"

	tt := CalcularTotais([]Registro{r}, 2024, time.March, hoje, VencidoGlobal)

	assert.True(t, tt.Faturado.IsZero())
	assert.True(t, tt.Pago.IsZero())
	assert.True(t, tt.Vencido.IsZero())
	assert.True(t, tt.AReceber.IsZero())
}

func TestCalcularTotais_VencidoGlobalCruzaMeses(t *testing.T) {
	hoje := *dia(t, "2024-04-20")

	fevereiro := registro("80.00")
	fevereiro.DataEmissao = dia(t, "2024-02-05")
	fevereiro.DataVencimento = dia(t, "2024-02-20")

	abril := registro("120.00")
	abril.DataEmissao = dia(t, "2024-04-02")
	abril.DataVencimento = dia(t, "2024-04-10")

	regs := []Registro{fevereiro, abril}

	global := CalcularTotais(regs, 2024, time.April, hoje, VencidoGlobal)
	// Faturado só conta abril, mas a nota de fevereiro continua vencida.
	assert.True(t, global.Faturado.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, global.Vencido.Equal(decimal.RequireFromString("200.00")), "vencido: %s", global.Vencido)

	escopado := CalcularTotais(regs, 2024, time.April, hoje, VencidoPeriodo)
	assert.True(t, escopado.Vencido.Equal(decimal.RequireFromString("120.00")), "vencido: %s", escopado.Vencido)
}

func TestCalcularTotais_IdentidadeFaturadoPagoAReceber(t *testing.T) {
	hoje := *dia(t, "2024-03-15")

	// Mistura de pagas, pendentes, vencidas e especiais com centavos quebrados.
	valores := []struct {
		valor string
		pago  bool
		tipo  string
	}{
		{"10.01", true, TipoEnvio},
		{"33.33", false, TipoEnvio},
		{"0.07", true, TipoEnvio},
		{"999.99", false, TipoEnvio},
		{"55.55", false, "CANCELADA"},
	}
	var regs []Registro
	for _, v := range valores {
		r := contaDeMarco(t, v.valor)
		r.TipoNF = v.tipo
		if v.pago {
			r.DataPagamento = dia(t, "2024-03-05")
		}
		regs = append(regs, r)
	}

	tt := CalcularTotais(regs, 2024, time.March, hoje, VencidoGlobal)
	require.True(t, tt.Faturado.Equal(tt.Pago.Add(tt.AReceber)),
		"faturado=%s pago=%s a_receber=%s", tt.Faturado, tt.Pago, tt.AReceber)
}

func TestCalcularTotais_PagamentoParcialEntraEmPago(t *testing.T) {
	hoje := *dia(t, "2024-03-15")

	r := contaDeMarco(t, "100.00")
	r.ValorPago = decimal.RequireFromString("40.00") // ainda não quitada

	tt := CalcularTotais([]Registro{r}, 2024, time.March, hoje, VencidoGlobal)
	assert.True(t, tt.Pago.Equal(decimal.RequireFromString("40.00")), "pago: %s", tt.Pago)
	assert.True(t, tt.AReceber.Equal(decimal.RequireFromString("60.00")), "a_receber: %s", tt.AReceber)
	assert.False(t, tt.Inconsistente)
}

func TestCalcularTotais_PagoAcimaDoFaturadoSinalizaInconsistencia(t *testing.T) {
	hoje := *dia(t, "2024-03-15")

	// valor_pago lançado acima do valor da nota — erro de digitação que o
	// dashboard deve denunciar em vez de engolir.
	r := contaDeMarco(t, "100.00")
	r.ValorPago = decimal.RequireFromString("150.00")

	tt := CalcularTotais([]Registro{r}, 2024, time.March, hoje, VencidoGlobal)
	assert.True(t, tt.AReceber.IsNegative())
	assert.True(t, tt.Inconsistente)
}

func TestCalcularTotais_ConjuntoVazio(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	tt := CalcularTotais(nil, 2024, time.March, hoje, VencidoGlobal)
	assert.True(t, tt.Faturado.IsZero())
	assert.True(t, tt.Pago.IsZero())
	assert.True(t, tt.Vencido.IsZero())
	assert.True(t, tt.AReceber.IsZero())
}
