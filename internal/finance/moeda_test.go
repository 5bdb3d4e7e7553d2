package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "R$ 0,00"},
		{"1234.56", "R$ 1.234,56"},
		{"100", "R$ 100,00"},
		{"1000000.5", "R$ 1.000.000,50"},
	}
	for _, c := range casos {
		v := decimal.RequireFromString(c.valor)
		assert.Equal(t, c.esperado, FormatarMoeda(v), "valor %s", c.valor)
	}
}

func TestFormatarMoeda_ZeroValueNaoQuebra(t *testing.T) {
	var v decimal.Decimal
	assert.Equal(t, "R$ 0,00", FormatarMoeda(v))
}

func TestParseValorMascarado(t *testing.T) {
	casos := []struct {
		raw      string
		esperado string
	}{
		{"", "0"},
		{"R$ 1.234,56", "1234.56"},
		{"123456", "1234.56"},
		{"0,07", "0.07"},
		{"abc", "0"},
	}
	for _, c := range casos {
		got := ParseValorMascarado(c.raw)
		assert.True(t, got.Equal(decimal.RequireFromString(c.esperado)),
			"raw=%q got=%s", c.raw, got)
	}
}

func TestParseDia(t *testing.T) {
	d, err := ParseDia("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	// Timestamps completos são truncados na data.
	d, err = ParseDia("2024-03-15T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	_, err = ParseDia("15/03/2024")
	assert.Error(t, err)

	_, err = ParseDia("")
	assert.Error(t, err)
}

func TestFormatarData(t *testing.T) {
	assert.Equal(t, "-", FormatarData(nil))
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatarData(&d))
}
