package finance

import (
	"strings"
	"time"
)

const formatoDia = "2006-01-02"

// ParseDia interpreta uma string de data sem hora ("2025-03-01" ou um
// timestamp com a data nos 10 primeiros caracteres). O parse é feito sempre em
// UTC com hora zero fixa, para que uma data pura nunca mude de dia por conta
// de fuso horário do runtime.
func ParseDia(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(formatoDia) {
		s = s[:len(formatoDia)]
	}
	return time.Parse(formatoDia, s)
}

// DiaCivil descarta a hora, mantendo apenas ano/mês/dia. Comparações de
// vencimento são sempre feitas nessa granularidade.
func DiaCivil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AntesDoDia informa se a cai em um dia civil estritamente anterior a b.
func AntesDoDia(a, b time.Time) bool {
	return DiaCivil(a).Before(DiaCivil(b))
}

// FormatarData renderiza dd/mm/aaaa; nil vira o traço usado nas telas e
// relatórios.
func FormatarData(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}
