package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Central-IR/contas-receber/internal/dto"
	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// dashboardCacheTTL keeps totals hot between the front end's poll ticks
// without letting them drift further than one interval.
const dashboardCacheTTL = 30 * time.Second

type DashboardService interface {
	Totais(ctx context.Context, ano int, mes int) (*dto.TotaisResponse, error)
}

type dashboardService struct {
	repo  repository.ContaRepository
	rdb   *redis.Client
	agora func() time.Time
}

func NewDashboardService(repo repository.ContaRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{repo: repo, rdb: rdb, agora: time.Now}
}

// Totais computa os cartões do dashboard para (ano, mês) com a política de
// vencido global. Resultados ficam 30s no Redis; falha de cache nunca derruba
// a resposta.
func (s *dashboardService) Totais(ctx context.Context, ano int, mes int) (*dto.TotaisResponse, error) {
	key := fmt.Sprintf("dashboard:%d:%02d", ano, mes)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached dto.TotaisResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	contas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	totais := finance.CalcularTotais(toRegistros(contas), ano, time.Month(mes), s.agora(), finance.VencidoGlobal)
	if totais.Inconsistente {
		log.Warn().
			Int("ano", ano).
			Int("mes", mes).
			Str("faturado", totais.Faturado.String()).
			Str("pago", totais.Pago.String()).
			Msg("dashboard: total pago acima do faturado no período")
	}

	resp := &dto.TotaisResponse{
		Ano:           ano,
		Mes:           mes,
		Faturado:      totais.Faturado,
		Pago:          totais.Pago,
		Vencido:       totais.Vencido,
		AReceber:      totais.AReceber,
		Inconsistente: totais.Inconsistente,
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, raw, dashboardCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("dashboard: cache write failed")
			}
		}
	}
	return resp, nil
}
