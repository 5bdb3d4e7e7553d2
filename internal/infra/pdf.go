package infra

// pdf.go — monthly receivables report generation using go-pdf/fpdf.
// A4 landscape table with one row per conta plus a totals footer mirroring the
// dashboard cards (faturado, pago, vencido, a receber).

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Central-IR/contas-receber/internal/finance"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

var nomesMeses = []string{"", "Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"}

// RelatorioLinha is one printed table row.
type RelatorioLinha struct {
	NumeroNF   string
	Orgao      string
	Vendedor   string
	Banco      string
	Valor      decimal.Decimal
	Emissao    *time.Time
	Vencimento *time.Time
	Status     string
}

// RelatorioDados is everything the report needs, already filtered and ordered
// by the caller.
type RelatorioDados struct {
	Ano    int
	Mes    time.Month
	Linhas []RelatorioLinha
	Totais finance.Totais
}

// GerarRelatorioPDF writes the monthly report to storagePath and returns the
// absolute file path.
func GerarRelatorioPDF(dados RelatorioDados, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("contas_receber_%04d_%02d.pdf", dados.Ano, int(dados.Mes))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Contas a Receber"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%s de %d", nomesMeses[int(dados.Mes)], dados.Ano)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr("Gerado em "+time.Now().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ────────────────────────────────────────────────────────
	cols := []struct {
		titulo string
		w      float64
		align  string
	}{
		{"Nº NF", 0.09, "L"},
		{"Emissão", 0.09, "C"},
		{"Vencimento", 0.09, "C"},
		{"Órgão", 0.32, "L"},
		{"Vendedor", 0.12, "L"},
		{"Banco", 0.10, "L"},
		{"Valor", 0.10, "R"},
		{"Status", 0.09, "C"},
	}

	pdf.SetFont("Helvetica", "B", 8)
	for _, c := range cols {
		pdf.CellFormat(contentW*c.w, 6, tr(c.titulo), "B", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, l := range dados.Linhas {
		orgao := l.Orgao
		if len(orgao) > 52 {
			orgao = orgao[:51] + "…"
		}
		banco := l.Banco
		if banco == "" {
			banco = "-"
		}
		campos := []struct {
			valor string
			i     int
		}{
			{l.NumeroNF, 0},
			{finance.FormatarData(l.Emissao), 1},
			{finance.FormatarData(l.Vencimento), 2},
			{orgao, 3},
			{l.Vendedor, 4},
			{banco, 5},
			{finance.FormatarMoeda(l.Valor), 6},
			{l.Status, 7},
		}
		for _, f := range campos {
			pdf.CellFormat(contentW*cols[f.i].w, 5, tr(f.valor), "", 0, cols[f.i].align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Totals footer ────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	totais := []struct {
		rotulo string
		valor  decimal.Decimal
	}{
		{"Faturado", dados.Totais.Faturado},
		{"Pago", dados.Totais.Pago},
		{"Vencido", dados.Totais.Vencido},
		{"A Receber", dados.Totais.AReceber},
	}
	pdf.SetFont("Helvetica", "B", 9)
	for _, t := range totais {
		pdf.CellFormat(contentW*0.70, 6, tr(t.rotulo+":"), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.30, 6, tr(finance.FormatarMoeda(t.valor)), "", 1, "R", false, 0, "")
	}

	if dados.Totais.Inconsistente {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 5, tr("Atenção: total pago acima do faturado no período — verifique os lançamentos."), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
