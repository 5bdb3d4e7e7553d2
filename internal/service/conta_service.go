package service

import (
	"context"
	"errors"
	"time"

	"github.com/Central-IR/contas-receber/internal/dto"
	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/model"
	"github.com/Central-IR/contas-receber/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP status codes at the handler layer.
var (
	ErrContaNaoEncontrada = errors.New("conta não encontrada")
	ErrNumeroNFDuplicado  = errors.New("já existe uma conta com esse número de NF")
)

type ContaService interface {
	Criar(ctx context.Context, req dto.CriarContaRequest) (*dto.ContaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ContaResponse, error)
	Listar(ctx context.Context, q dto.ListarContasQuery) ([]dto.ContaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarContaRequest) (*dto.ContaResponse, error)
	RegistrarPagamento(ctx context.Context, id uuid.UUID, req dto.RegistrarPagamentoRequest) (*dto.ContaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	AdicionarObservacao(ctx context.Context, id uuid.UUID, req dto.CriarObservacaoRequest) (*dto.ContaResponse, error)
}

type contaService struct {
	repo  repository.ContaRepository
	agora func() time.Time
}

func NewContaService(repo repository.ContaRepository) ContaService {
	return &contaService{repo: repo, agora: time.Now}
}

func (s *contaService) Criar(ctx context.Context, req dto.CriarContaRequest) (*dto.ContaResponse, error) {
	// Unicidade de numero_nf — a constraint do banco é a garantia final, mas o
	// check antecipado devolve um erro de negócio em vez de um erro de driver.
	if existente, err := s.repo.FindByNumeroNF(ctx, req.NumeroNF); err == nil && existente != nil {
		return nil, ErrNumeroNFDuplicado
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	emissao, err := finance.ParseDia(req.DataEmissao)
	if err != nil {
		return nil, err
	}

	c := &model.ContaReceber{
		NumeroNF:    req.NumeroNF,
		Orgao:       req.Orgao,
		Vendedor:    req.Vendedor,
		Banco:       req.Banco,
		ValorNota:   req.ValorNota,
		ValorPago:   decimal.Zero,
		DataEmissao: emissao,
		TipoNF:      finance.TipoEnvio,
		Status:      string(finance.StatusPendente),
		DadosFrete:  req.DadosFrete,
	}
	if req.ValorPago != nil {
		c.ValorPago = *req.ValorPago
	}
	if req.DataVencimento != nil {
		d, err := finance.ParseDia(*req.DataVencimento)
		if err != nil {
			return nil, err
		}
		c.DataVencimento = &d
	}
	if req.DataPagamento != nil {
		d, err := finance.ParseDia(*req.DataPagamento)
		if err != nil {
			return nil, err
		}
		c.DataPagamento = &d
	}
	if req.TipoNF != nil {
		c.TipoNF = *req.TipoNF
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toContaResponse(*c, s.agora())
	return &resp, nil
}

func (s *contaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ContaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContaNaoEncontrada
		}
		return nil, err
	}
	resp := toContaResponse(*c, s.agora())
	return &resp, nil
}

// Listar aplica o recorte de período e os filtros de busca através do motor de
// finance, e devolve as contas na ordem de emissão decrescente com o status de
// exibição já resolvido.
func (s *contaService) Listar(ctx context.Context, q dto.ListarContasQuery) ([]dto.ContaResponse, error) {
	contas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	hoje := s.agora()

	porID := make(map[string]model.ContaReceber, len(contas))
	for _, c := range contas {
		porID[c.ID.String()] = c
	}

	regs := toRegistros(contas)
	if q.Mes != 0 && q.Ano != 0 {
		regs = finance.FiltrarPorPeriodo(regs, q.Ano, time.Month(q.Mes), finance.CampoEmissao)
	}
	regs = finance.AplicarFiltros(regs, finance.Filtros{
		Busca:    q.Busca,
		Vendedor: q.Vendedor,
		Banco:    q.Banco,
		Status:   q.Status,
	}, hoje)
	regs = finance.OrdenarPorEmissaoDesc(regs)

	out := make([]dto.ContaResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, toContaResponse(porID[r.ID], hoje))
	}
	return out, nil
}

func (s *contaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarContaRequest) (*dto.ContaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContaNaoEncontrada
		}
		return nil, err
	}

	if req.NumeroNF != nil && *req.NumeroNF != c.NumeroNF {
		if existente, err := s.repo.FindByNumeroNF(ctx, *req.NumeroNF); err == nil && existente != nil && existente.ID != id {
			return nil, ErrNumeroNFDuplicado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.NumeroNF = *req.NumeroNF
	}
	if req.Orgao != nil {
		c.Orgao = *req.Orgao
	}
	if req.Vendedor != nil {
		c.Vendedor = *req.Vendedor
	}
	if req.Banco != nil {
		c.Banco = req.Banco
	}
	if req.ValorNota != nil {
		c.ValorNota = *req.ValorNota
	}
	if req.ValorPago != nil {
		c.ValorPago = *req.ValorPago
	}
	if req.DataEmissao != nil {
		d, err := finance.ParseDia(*req.DataEmissao)
		if err != nil {
			return nil, err
		}
		c.DataEmissao = d
	}
	if req.DataVencimento != nil {
		d, err := finance.ParseDia(*req.DataVencimento)
		if err != nil {
			return nil, err
		}
		c.DataVencimento = &d
	}
	if req.DataPagamento != nil {
		d, err := finance.ParseDia(*req.DataPagamento)
		if err != nil {
			return nil, err
		}
		c.DataPagamento = &d
	}
	if req.TipoNF != nil {
		c.TipoNF = *req.TipoNF
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.DadosFrete != nil {
		c.DadosFrete = req.DadosFrete
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toContaResponse(*c, s.agora())
	return &resp, nil
}

// RegistrarPagamento é a baixa de pagamento da tela principal: atualiza apenas
// os campos financeiros e marca a conta como paga quando há data de pagamento.
func (s *contaService) RegistrarPagamento(ctx context.Context, id uuid.UUID, req dto.RegistrarPagamentoRequest) (*dto.ContaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContaNaoEncontrada
		}
		return nil, err
	}

	c.ValorPago = req.ValorPago
	if req.Banco != nil {
		c.Banco = req.Banco
	}
	if req.DataPagamento != nil {
		d, err := finance.ParseDia(*req.DataPagamento)
		if err != nil {
			return nil, err
		}
		c.DataPagamento = &d
	}
	switch {
	case req.Status != nil:
		c.Status = *req.Status
	case c.DataPagamento != nil:
		c.Status = string(finance.StatusPago)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toContaResponse(*c, s.agora())
	return &resp, nil
}

func (s *contaService) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContaNaoEncontrada
		}
		return err
	}
	return nil
}

func (s *contaService) AdicionarObservacao(ctx context.Context, id uuid.UUID, req dto.CriarObservacaoRequest) (*dto.ContaResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContaNaoEncontrada
		}
		return nil, err
	}

	o := &model.Observacao{ContaID: id, Texto: req.Texto}
	if err := s.repo.AddObservacao(ctx, o); err != nil {
		return nil, err
	}

	// Reload so the response carries the full, ordered log.
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toContaResponse(*c, s.agora())
	return &resp, nil
}
