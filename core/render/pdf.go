// Package render: PDF renderer.
// Lays the report out on a single A4 page with gofpdf: title, totals,
// the top-words table and the italic content preview.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/textkit/core"
)

// PDFRenderer renders the report as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the report into PDF bytes.
func (r *PDFRenderer) Render(report core.Report) ([]byte, error) {
	res := report.Result
	if res == nil {
		return nil, errNoResult
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 input.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Word frequency report", "", "L", false)
	pdf.Ln(2)

	if report.Title != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(report.Title), "", "L", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+report.Source), "", "L", false)
	pdf.MultiCell(0, 5, "Generated: "+report.GeneratedAt.Format(time.RFC3339), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	renderTotals(pdf, res)
	pdf.Ln(6)

	if len(res.TopWords) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 7, fmt.Sprintf("Top %d words", len(res.TopWords)), "", "L", false)
		pdf.Ln(1)
		renderTopWords(pdf, res.TopWords)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, stopWordNote, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, "Content preview", "", "L", false)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, tr(previewOrPlaceholder(res.Preview)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderTotals draws the three headline counts side by side.
func renderTotals(pdf *gofpdf.Fpdf, res *core.AnalysisResult) {
	const w = 60
	labels := []string{"Total Words", "Total Characters", "Chars (no spaces)"}
	values := []int{res.TotalWordCount, res.TotalCharCount, res.TotalCharCountNoSpaces}

	pdf.SetFont("Helvetica", "B", 16)
	for _, v := range values {
		pdf.CellFormat(w, 9, fmt.Sprintf("%d", v), "", 0, "C", false, 0, "")
	}
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	for _, l := range labels {
		pdf.CellFormat(w, 5, l, "", 0, "C", false, 0, "")
	}
	pdf.Ln(5)
	pdf.SetTextColor(0, 0, 0)
}

// renderTopWords draws the ranking as a bordered table.
func renderTopWords(pdf *gofpdf.Fpdf, words []core.TopWord) {
	widths := []float64{15, 85, 40, 40}
	headers := []string{"#", "Word", "Count", "Density"}
	aligns := []string{"C", "L", "C", "R"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, tw := range words {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			tw.Word,
			fmt.Sprintf("%d", tw.Count),
			formatDensity(tw.Density),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, aligns[j], false, 0, "")
		}
		pdf.Ln(-1)
	}
}
