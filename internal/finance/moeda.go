package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda renderiza um valor em reais com agrupamento pt-BR
// ("R$ 1.234,56"). Valor zero é formatado normalmente, nunca gera erro.
func FormatarMoeda(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}

// ParseValorMascarado converte a entrada de um campo com máscara monetária
// ("R$ 1.234,56", "1234,56", "123456") em decimal: apenas os dígitos são
// considerados e o resultado é dividido por 100. Entrada vazia vale zero.
func ParseValorMascarado(raw string) decimal.Decimal {
	var digitos []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digitos = append(digitos, raw[i])
		}
	}
	if len(digitos) == 0 {
		return decimal.Zero
	}
	cents, err := decimal.NewFromString(string(digitos))
	if err != nil {
		return decimal.Zero
	}
	return cents.Shift(-2)
}
