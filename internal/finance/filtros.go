package finance

import (
	"sort"
	"strings"
	"time"
)

// Filtros combina busca textual com filtros categóricos. Campos vazios não
// restringem nada.
type Filtros struct {
	Busca    string
	Vendedor string
	Banco    string
	Status   string
}

// AplicarFiltros devolve os registros que casam com todos os filtros ativos.
//
// A busca é por substring, sem distinção de caixa, contra número da NF, órgão
// e vendedor. Vendedor e banco exigem igualdade exata. O filtro de status
// compara contra o status RESOLVIDO — em particular, "VENCIDO" é derivado da
// comparação de datas, nunca lido do campo persistido (que pode estar
// desatualizado).
func AplicarFiltros(regs []Registro, f Filtros, hoje time.Time) []Registro {
	busca := strings.ToLower(strings.TrimSpace(f.Busca))

	out := make([]Registro, 0, len(regs))
	for _, r := range regs {
		if busca != "" &&
			!strings.Contains(strings.ToLower(r.NumeroNF), busca) &&
			!strings.Contains(strings.ToLower(r.Orgao), busca) &&
			!strings.Contains(strings.ToLower(r.Vendedor), busca) {
			continue
		}
		if f.Vendedor != "" && r.Vendedor != f.Vendedor {
			continue
		}
		if f.Banco != "" && r.Banco != f.Banco {
			continue
		}
		if f.Status != "" && string(ResolverStatus(r, hoje)) != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// OrdenarPorEmissaoDesc ordena uma cópia por data de emissão, mais recente
// primeiro, de forma estável. Registros sem emissão vão para o final. A
// ordenação é deliberadamente separada da filtragem para que uma possa mudar
// sem a outra.
func OrdenarPorEmissaoDesc(regs []Registro) []Registro {
	out := make([]Registro, len(regs))
	copy(out, regs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DataEmissao, out[j].DataEmissao
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return out
}
