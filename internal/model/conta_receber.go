package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContaReceber é uma nota fiscal aguardando recebimento.
// TipoNF: "ENVIO" | "CANCELADA" | "REMESSA_AMOSTRA" | "SIMPLES_REMESSA" | "DEVOLUCAO"
// Status: "PAGO" | "VENCIDO" | "PENDENTE" — consultivo; a exibição é sempre
// recalculada a partir das datas.
type ContaReceber struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroNF string    `gorm:"type:varchar(50);uniqueIndex;not null;column:numero_nf"`
	Orgao    string    `gorm:"type:text;not null"`
	Vendedor string    `gorm:"type:varchar(100);not null"`
	Banco    *string   `gorm:"type:varchar(100)"`

	ValorNota decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValorPago decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	DataEmissao    time.Time  `gorm:"type:date;index;not null"`
	DataVencimento *time.Time `gorm:"type:date"`
	DataPagamento  *time.Time `gorm:"type:date"`

	TipoNF string `gorm:"type:varchar(30);not null;default:'ENVIO';column:tipo_nf"`
	Status string `gorm:"type:varchar(20);not null;default:'PENDENTE'"`

	// DadosFrete guarda o payload bruto vindo do controle de frete
	// (transportadora, rastreio, data de entrega). Passthrough.
	DadosFrete []byte `gorm:"type:jsonb;column:dados_frete"`

	Observacoes []Observacao `gorm:"foreignKey:ContaID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContaReceber) TableName() string { return "contas_receber" }

// Observacao é uma anotação livre, imutável, anexada a uma conta.
type Observacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContaID   uuid.UUID `gorm:"type:uuid;index;not null;column:conta_id"`
	Texto     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Observacao) TableName() string { return "observacoes_conta" }
