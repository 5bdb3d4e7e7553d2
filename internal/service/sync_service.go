package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Central-IR/contas-receber/internal/dto"
	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/model"
	"github.com/Central-IR/contas-receber/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FreteLister is the slice of the freight client the sync needs; the concrete
// implementation is infra.FreteClient.
type FreteLister interface {
	ListarFretes(ctx context.Context, sessionToken string) ([]infra.Frete, error)
}

type SyncService interface {
	// Sincronizar importa como contas a receber as notas já entregues no
	// controle de frete que ainda não existem aqui. Idempotente por numero_nf.
	Sincronizar(ctx context.Context, sessionToken string) (*dto.SincronizacaoResponse, error)
}

type syncService struct {
	repo   repository.ContaRepository
	fretes FreteLister
	cb     *infra.CircuitBreaker
}

func NewSyncService(repo repository.ContaRepository, fretes FreteLister, cb *infra.CircuitBreaker) SyncService {
	return &syncService{repo: repo, fretes: fretes, cb: cb}
}

func (s *syncService) Sincronizar(ctx context.Context, sessionToken string) (*dto.SincronizacaoResponse, error) {
	var fretes []infra.Frete
	err := s.cb.Execute(func() error {
		var err error
		fretes, err = s.fretes.ListarFretes(ctx, sessionToken)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("sincronização: %w", err)
	}

	resp := &dto.SincronizacaoResponse{}
	for _, f := range fretes {
		if !f.Entregue || f.NumeroNF == "" {
			continue
		}

		if _, err := s.repo.FindByNumeroNF(ctx, f.NumeroNF); err == nil {
			resp.Ignoradas++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, err
		}

		conta, err := contaDeFrete(f)
		if err != nil {
			log.Warn().Err(err).Str("numero_nf", f.NumeroNF).Msg("sync: frete descartado")
			continue
		}
		if err := s.repo.Create(ctx, conta); err != nil {
			// Corrida com outra importação do mesmo numero_nf: a unique
			// constraint decide, e o registro passa a contar como ignorado.
			log.Warn().Err(err).Str("numero_nf", f.NumeroNF).Msg("sync: criação falhou")
			resp.Ignoradas++
			continue
		}
		log.Info().Str("numero_nf", f.NumeroNF).Msg("sync: nota importada automaticamente")
		resp.Importadas++
	}
	return resp, nil
}

// contaDeFrete monta a conta PENDENTE correspondente a uma entrega confirmada.
func contaDeFrete(f infra.Frete) (*model.ContaReceber, error) {
	emissao, err := finance.ParseDia(f.DataEmissao)
	if err != nil {
		return nil, fmt.Errorf("data_emissao inválida: %w", err)
	}

	entrega := f.DataEntregaRealizada
	if entrega == "" {
		entrega = f.DataEntrega
	}
	dadosFrete, err := json.Marshal(map[string]string{
		"transportadora": f.Transportadora,
		"rastreio":       f.Rastreio,
		"data_entrega":   entrega,
	})
	if err != nil {
		return nil, err
	}

	return &model.ContaReceber{
		NumeroNF:    f.NumeroNF,
		Orgao:       f.Orgao,
		Vendedor:    f.VendedorResponsavel,
		ValorNota:   decimal.NewFromFloat(f.ValorNota).Round(2),
		ValorPago:   decimal.Zero,
		DataEmissao: emissao,
		TipoNF:      finance.TipoEnvio,
		Status:      string(finance.StatusPendente),
		DadosFrete:  dadosFrete,
	}, nil
}
