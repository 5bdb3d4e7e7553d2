package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Frete is a delivery record returned by the Controle de Frete service.
// Only the fields this system consumes are mapped.
type Frete struct {
	NumeroNF             string  `json:"numero_nf"`
	ValorNota            float64 `json:"valor_nota"`
	Orgao                string  `json:"orgao"`
	VendedorResponsavel  string  `json:"vendedor_responsavel"`
	DataEmissao          string  `json:"data_emissao"`
	Entregue             bool    `json:"entregue"`
	Transportadora       string  `json:"transportadora"`
	Rastreio             string  `json:"rastreio"`
	DataEntrega          string  `json:"data_entrega"`
	DataEntregaRealizada string  `json:"data_entrega_realizada"`
}

// FreteClient is an HTTP client for the sibling freight service. Calls are
// authenticated with the same session token the caller presented, forwarded
// as-is.
type FreteClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFreteClient(baseURL string) *FreteClient {
	return &FreteClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListarFretes fetches every delivery record visible to the session.
func (c *FreteClient) ListarFretes(ctx context.Context, sessionToken string) ([]Frete, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fretes", nil)
	if err != nil {
		return nil, fmt.Errorf("frete: create request: %w", err)
	}
	req.Header.Set("X-Session-Token", sessionToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("frete: service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("frete: service returned %d", resp.StatusCode)
	}

	var fretes []Frete
	if err := json.NewDecoder(resp.Body).Decode(&fretes); err != nil {
		return nil, fmt.Errorf("frete: decode response: %w", err)
	}
	return fretes, nil
}
