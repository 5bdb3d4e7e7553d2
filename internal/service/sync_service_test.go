package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Central-IR/contas-receber/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFreteLister struct {
	fretes []infra.Frete
	err    error
	calls  int
}

func (s *stubFreteLister) ListarFretes(_ context.Context, _ string) ([]infra.Frete, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.fretes, nil
}

var _ FreteLister = (*stubFreteLister)(nil)

func freteEntregue(numeroNF string) infra.Frete {
	return infra.Frete{
		NumeroNF:             numeroNF,
		ValorNota:            2500.559,
		Orgao:                "Secretaria de Educação",
		VendedorResponsavel:  "Paula",
		DataEmissao:          "2025-03-01T00:00:00.000Z",
		Entregue:             true,
		Transportadora:       "Rápido Sul",
		Rastreio:             "RS123456789BR",
		DataEntrega:          "2025-03-10",
		DataEntregaRealizada: "2025-03-09",
	}
}

func TestSincronizarImportaEntregas(t *testing.T) {
	repo := newStubContaRepo()
	fretes := &stubFreteLister{fretes: []infra.Frete{
		freteEntregue("NF-100"),
		{NumeroNF: "NF-101", Entregue: false}, // ainda em trânsito
		{NumeroNF: "", Entregue: true},        // sem NF não há o que importar
	}}
	svc := NewSyncService(repo, fretes, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	resp, err := svc.Sincronizar(context.Background(), "token-abc")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Importadas)
	assert.Equal(t, 0, resp.Ignoradas)
	require.Len(t, repo.contas, 1)

	conta, err := repo.FindByNumeroNF(context.Background(), "NF-100")
	require.NoError(t, err)
	assert.Equal(t, "Secretaria de Educação", conta.Orgao)
	assert.Equal(t, "Paula", conta.Vendedor)
	assert.Equal(t, "PENDENTE", conta.Status)
	assert.Equal(t, "ENVIO", conta.TipoNF)
	assert.Equal(t, "2500.56", conta.ValorNota.StringFixed(2))
	// A data de emissão vem com hora; só o dia interessa.
	assert.Equal(t, "2025-03-01", conta.DataEmissao.Format("2006-01-02"))

	var dados map[string]string
	require.NoError(t, json.Unmarshal(conta.DadosFrete, &dados))
	assert.Equal(t, "Rápido Sul", dados["transportadora"])
	assert.Equal(t, "RS123456789BR", dados["rastreio"])
	assert.Equal(t, "2025-03-09", dados["data_entrega"])
}

func TestSincronizarIgnoraNotasJaImportadas(t *testing.T) {
	repo := newStubContaRepo()
	seedConta(t, repo, "NF-100", "2025-03-01", nil)
	fretes := &stubFreteLister{fretes: []infra.Frete{freteEntregue("NF-100")}}
	svc := NewSyncService(repo, fretes, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	resp, err := svc.Sincronizar(context.Background(), "token-abc")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Importadas)
	assert.Equal(t, 1, resp.Ignoradas)
	assert.Len(t, repo.contas, 1)
}

func TestSincronizarEhIdempotente(t *testing.T) {
	repo := newStubContaRepo()
	fretes := &stubFreteLister{fretes: []infra.Frete{freteEntregue("NF-100")}}
	svc := NewSyncService(repo, fretes, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	primeira, err := svc.Sincronizar(context.Background(), "token-abc")
	require.NoError(t, err)
	segunda, err := svc.Sincronizar(context.Background(), "token-abc")
	require.NoError(t, err)

	assert.Equal(t, 1, primeira.Importadas)
	assert.Equal(t, 1, segunda.Ignoradas)
	assert.Len(t, repo.contas, 1)
}

func TestSincronizarUsaDataPrevistaQuandoNaoHaRealizada(t *testing.T) {
	repo := newStubContaRepo()
	f := freteEntregue("NF-102")
	f.DataEntregaRealizada = ""
	fretes := &stubFreteLister{fretes: []infra.Frete{f}}
	svc := NewSyncService(repo, fretes, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	_, err := svc.Sincronizar(context.Background(), "token-abc")
	require.NoError(t, err)

	conta, err := repo.FindByNumeroNF(context.Background(), "NF-102")
	require.NoError(t, err)
	var dados map[string]string
	require.NoError(t, json.Unmarshal(conta.DadosFrete, &dados))
	assert.Equal(t, "2025-03-10", dados["data_entrega"])
}

func TestSincronizarAbreCircuitoAposFalhasConsecutivas(t *testing.T) {
	repo := newStubContaRepo()
	fretes := &stubFreteLister{err: errors.New("connection refused")}
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{FailureThreshold: 2})
	svc := NewSyncService(repo, fretes, cb)

	for i := 0; i < 2; i++ {
		_, err := svc.Sincronizar(context.Background(), "token-abc")
		require.Error(t, err)
	}
	assert.Equal(t, infra.CBOpen, cb.State())

	// Circuito aberto: o cliente nem chega a ser chamado.
	chamadas := fretes.calls
	_, err := svc.Sincronizar(context.Background(), "token-abc")
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	assert.Equal(t, chamadas, fretes.calls)
}
