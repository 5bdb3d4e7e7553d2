// Package finance concentra a lógica de negócio pura do sistema: resolução de
// status de exibição, recorte por período (mês/ano), totais do dashboard e
// composição de filtros de busca. Todas as funções são determinísticas para um
// "hoje" fixo e não fazem I/O — a camada de service converte os modelos
// persistidos em Registro antes de chamar qualquer coisa daqui.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status é o status de exibição derivado de um registro.
type Status string

const (
	StatusPago     Status = "PAGO"
	StatusVencido  Status = "VENCIDO"
	StatusPendente Status = "PENDENTE"
	// StatusEspecial cobre notas fora do fluxo normal (cancelada, remessa de
	// amostra, simples remessa, devolução). Essas notas ficam fora de qualquer
	// total financeiro.
	StatusEspecial Status = "ESPECIAL"
)

// TipoEnvio é o único tipo de nota que participa do dashboard financeiro.
const TipoEnvio = "ENVIO"

// TiposNF lista o vocabulário aceito para tipo_nf.
var TiposNF = []string{TipoEnvio, "CANCELADA", "REMESSA_AMOSTRA", "SIMPLES_REMESSA", "DEVOLUCAO"}

// Registro é a forma normalizada de uma conta a receber consumida pelo motor.
// Campos de data já chegam interpretados; o status armazenado é apenas
// consultivo (ver ResolverStatus).
type Registro struct {
	ID       string
	NumeroNF string
	Orgao    string
	Vendedor string
	Banco    string

	Valor decimal.Decimal
	// ValorPago registra pagamento parcial de uma nota ainda não quitada.
	// Quando o status resolvido é PAGO o valor cheio da nota prevalece.
	ValorPago decimal.Decimal

	TipoNF           string
	StatusArmazenado string

	DataEmissao    *time.Time
	DataVencimento *time.Time
	DataPagamento  *time.Time
}
