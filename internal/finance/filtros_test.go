package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(t *testing.T) []Registro {
	t.Helper()
	a := registro("100.00")
	a.ID = "a"
	a.NumeroNF = "4501"
	a.Orgao = "Prefeitura de Sorocaba"
	a.Vendedor = "CARLOS"
	a.Banco = "BRADESCO"
	a.DataEmissao = dia(t, "2024-03-01")
	a.DataVencimento = dia(t, "2024-03-10")

	b := registro("200.00")
	b.ID = "b"
	b.NumeroNF = "4502"
	b.Orgao = "Hospital das Clinicas"
	b.Vendedor = "MARIA"
	b.Banco = "ITAU"
	b.DataEmissao = dia(t, "2024-03-20")
	b.DataPagamento = dia(t, "2024-03-25")

	c := registro("300.00")
	c.ID = "c"
	c.NumeroNF = "4390"
	c.Orgao = "Secretaria de Educacao"
	c.Vendedor = "CARLOS"
	c.DataEmissao = dia(t, "2024-02-15")
	c.DataVencimento = dia(t, "2024-02-28")

	return []Registro{a, b, c}
}

// ── AplicarFiltros ───────────────────────────────────────────────────────────

func TestAplicarFiltros_BuscaPorOrgao(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	// "clinicas" não aparece em numero_nf nem vendedor de nenhum registro.
	out := AplicarFiltros(base(t), Filtros{Busca: "clinicas"}, hoje)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestAplicarFiltros_BuscaCaseInsensitive(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	out := AplicarFiltros(base(t), Filtros{Busca: "CaRlOs"}, hoje)
	assert.Len(t, out, 2)
}

func TestAplicarFiltros_VendedorEBancoExatos(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	regs := base(t)

	out := AplicarFiltros(regs, Filtros{Vendedor: "CARLOS"}, hoje)
	assert.Len(t, out, 2)

	out = AplicarFiltros(regs, Filtros{Vendedor: "CARLOS", Banco: "BRADESCO"}, hoje)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)

	// Substring não vale para filtros categóricos.
	out = AplicarFiltros(regs, Filtros{Vendedor: "CARL"}, hoje)
	assert.Empty(t, out)
}

func TestAplicarFiltros_StatusUsaResolucaoPorDatas(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	regs := base(t)

	// O registro "c" está vencido por data, mesmo com status armazenado
	// desatualizado dizendo PENDENTE.
	regs[2].StatusArmazenado = "PENDENTE"

	out := AplicarFiltros(regs, Filtros{Status: "VENCIDO"}, hoje)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)

	out = AplicarFiltros(regs, Filtros{Status: "PAGO"}, hoje)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestAplicarFiltros_SemFiltrosDevolveTudo(t *testing.T) {
	hoje := *dia(t, "2024-03-15")
	out := AplicarFiltros(base(t), Filtros{}, hoje)
	assert.Len(t, out, 3)
}

// ── FiltrarPorPeriodo ────────────────────────────────────────────────────────

func TestFiltrarPorPeriodo_PorEmissao(t *testing.T) {
	out := FiltrarPorPeriodo(base(t), 2024, time.March, CampoEmissao)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestFiltrarPorPeriodo_PorVencimentoExcluiSemData(t *testing.T) {
	// "b" não tem vencimento — sai sem reclamar.
	out := FiltrarPorPeriodo(base(t), 2024, time.March, CampoVencimento)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFiltrarPorPeriodo_Idempotente(t *testing.T) {
	primeira := FiltrarPorPeriodo(base(t), 2024, time.March, CampoEmissao)
	segunda := FiltrarPorPeriodo(primeira, 2024, time.March, CampoEmissao)
	assert.Equal(t, primeira, segunda)
}

// ── OrdenarPorEmissaoDesc ────────────────────────────────────────────────────

func TestOrdenarPorEmissaoDesc(t *testing.T) {
	regs := base(t)
	semData := registro("10.00")
	semData.ID = "d"
	regs = append(regs, semData)

	out := OrdenarPorEmissaoDesc(regs)
	require.Len(t, out, 4)
	assert.Equal(t, "b", out[0].ID) // 2024-03-20
	assert.Equal(t, "a", out[1].ID) // 2024-03-01
	assert.Equal(t, "c", out[2].ID) // 2024-02-15
	assert.Equal(t, "d", out[3].ID) // sem emissão vai pro fim

	// Não muta a entrada.
	assert.Equal(t, "a", regs[0].ID)
}
