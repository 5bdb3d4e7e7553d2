package repository

import (
	"context"

	"github.com/Central-IR/contas-receber/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContaRepository defines the data access contract for contas a receber.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ContaRepository interface {
	Create(ctx context.Context, c *model.ContaReceber) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContaReceber, error)
	FindByNumeroNF(ctx context.Context, numeroNF string) (*model.ContaReceber, error)
	// List returns every conta, data_emissao DESC. The dataset is small
	// (single tenant); filtering happens in memory through the finance engine.
	List(ctx context.Context) ([]model.ContaReceber, error)
	Update(ctx context.Context, c *model.ContaReceber) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddObservacao(ctx context.Context, o *model.Observacao) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type contaRepo struct{ db *gorm.DB }

func NewContaRepository(db *gorm.DB) ContaRepository { return &contaRepo{db: db} }

func (r *contaRepo) Create(ctx context.Context, c *model.ContaReceber) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ContaReceber, error) {
	var c model.ContaReceber
	err := r.db.WithContext(ctx).
		Preload("Observacoes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contaRepo) FindByNumeroNF(ctx context.Context, numeroNF string) (*model.ContaReceber, error) {
	var c model.ContaReceber
	err := r.db.WithContext(ctx).Where("numero_nf = ?", numeroNF).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contaRepo) List(ctx context.Context) ([]model.ContaReceber, error) {
	var contas []model.ContaReceber
	err := r.db.WithContext(ctx).Order("data_emissao DESC").Find(&contas).Error
	return contas, err
}

func (r *contaRepo) Update(ctx context.Context, c *model.ContaReceber) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ContaReceber{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contaRepo) AddObservacao(ctx context.Context, o *model.Observacao) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *contaRepo) DB() *gorm.DB { return r.db }
