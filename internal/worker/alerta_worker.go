package worker

// alerta_worker.go
// Processes overdue-alert jobs from QueueAlerta: summarizes every conta
// VENCIDA and emails the configured recipient.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Central-IR/contas-receber/internal/finance"
	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AlertaWorker composes and sends the daily overdue summary.
type AlertaWorker struct {
	repo   repository.ContaRepository
	mailer *infra.Mailer
	agora  func() time.Time
}

func NewAlertaWorker(repo repository.ContaRepository, mailer *infra.Mailer) *AlertaWorker {
	return &AlertaWorker{repo: repo, mailer: mailer, agora: time.Now}
}

// Process lists every conta, resolves which became VENCIDA and emails the
// summary. Nothing overdue means no email.
func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if payload.Destino == "" {
		log.Warn().Msg("alerta_worker: empty destino — skipping")
		return
	}
	if !w.mailer.Configured() {
		log.Warn().Msg("alerta_worker: SMTP not configured — skipping")
		return
	}

	contas, err := w.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("alerta_worker: failed to list contas")
		return
	}

	hoje := w.agora()
	total := decimal.Zero
	var linhas []string
	for _, conta := range contas {
		banco := ""
		if conta.Banco != nil {
			banco = *conta.Banco
		}
		emissao := conta.DataEmissao
		reg := finance.Registro{
			ID:               conta.ID.String(),
			NumeroNF:         conta.NumeroNF,
			Orgao:            conta.Orgao,
			Vendedor:         conta.Vendedor,
			Banco:            banco,
			Valor:            conta.ValorNota,
			ValorPago:        conta.ValorPago,
			TipoNF:           conta.TipoNF,
			StatusArmazenado: conta.Status,
			DataEmissao:      &emissao,
			DataVencimento:   conta.DataVencimento,
			DataPagamento:    conta.DataPagamento,
		}
		if finance.ResolverStatus(reg, hoje) != finance.StatusVencido {
			continue
		}
		total = total.Add(conta.ValorNota)
		linhas = append(linhas, fmt.Sprintf("NF %s — %s — %s — vencida em %s",
			conta.NumeroNF, conta.Orgao,
			finance.FormatarMoeda(conta.ValorNota),
			finance.FormatarData(conta.DataVencimento)))
	}

	if len(linhas) == 0 {
		log.Info().Msg("alerta_worker: nenhuma conta vencida, nothing to send")
		return
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Existem %d conta(s) vencida(s), totalizando %s:\n\n",
		len(linhas), finance.FormatarMoeda(total))
	for _, l := range linhas {
		body.WriteString(l)
		body.WriteString("\n")
	}

	subject := fmt.Sprintf("[Contas a Receber] %d conta(s) vencida(s) em %s",
		len(linhas), hoje.Format("02/01/2006"))
	if err := w.mailer.Send(payload.Destino, subject, body.String()); err != nil {
		log.Error().Err(err).Str("to", payload.Destino).Msg("alerta_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.Destino).Int("vencidas", len(linhas)).Msg("alerta_worker: summary sent")
}
