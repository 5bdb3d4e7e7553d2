package finance

import "time"

// CampoData escolhe qual data do registro define o bucket de período. As
// variantes da aplicação divergem entre emissão e vencimento, então o chamador
// decide.
type CampoData int

const (
	CampoEmissao CampoData = iota
	CampoVencimento
)

func (c CampoData) de(r Registro) *time.Time {
	if c == CampoVencimento {
		return r.DataVencimento
	}
	return r.DataEmissao
}

// FiltrarPorPeriodo devolve os registros cujo campo de data cai no (ano, mês)
// informado. Registros sem a data, ou com data fora do período, ficam de fora;
// nada aqui gera pânico. A ordem relativa de entrada é preservada.
func FiltrarPorPeriodo(regs []Registro, ano int, mes time.Month, campo CampoData) []Registro {
	out := make([]Registro, 0, len(regs))
	for _, r := range regs {
		d := campo.de(r)
		if d == nil {
			continue
		}
		if d.Year() == ano && d.Month() == mes {
			out = append(out, r)
		}
	}
	return out
}
