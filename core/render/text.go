// Package render: terminal renderer.
// Prints the report the way the original result card reads: three totals,
// the top-words table and an italic preview, coloured by the active theme.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/style"
)

// TextRenderer renders a styled terminal summary.
type TextRenderer struct {
	styles  *style.Styles
	printer *message.Printer
}

// NewTextRenderer creates a TextRenderer. A nil styles uses the light theme.
func NewTextRenderer(styles *style.Styles) *TextRenderer {
	if styles == nil {
		styles = style.NewStyles(nil)
	}
	return &TextRenderer{
		styles:  styles,
		printer: message.NewPrinter(language.English),
	}
}

// Render builds the terminal summary.
func (r *TextRenderer) Render(report core.Report) ([]byte, error) {
	res := report.Result
	if res == nil {
		return nil, errNoResult
	}
	s := r.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Analysis Complete"))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render(report.Source))
	b.WriteString("\n")
	if report.Title != "" {
		b.WriteString(s.Normal.Render(report.Title))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		r.statBox(res.TotalWordCount, "Total Words"),
		r.statBox(res.TotalCharCount, "Total Characters"),
		r.statBox(res.TotalCharCountNoSpaces, "Chars (no spaces)"),
	))
	b.WriteString("\n\n")

	if len(res.TopWords) > 0 {
		b.WriteString(s.Title.Render(fmt.Sprintf("Top %d Words", len(res.TopWords))))
		b.WriteString("\n")
		b.WriteString(r.table(res.TopWords))
		b.WriteString(s.Muted.Render(stopWordNote))
		b.WriteString("\n\n")
	}

	b.WriteString(s.Title.Render("Content Preview:"))
	b.WriteString("\n")
	b.WriteString(s.Preview.Render(previewOrPlaceholder(res.Preview)))
	b.WriteString("\n")

	return []byte(b.String()), nil
}

// Extension returns the file extension for terminal output saved to disk.
func (r *TextRenderer) Extension() string {
	return ".txt"
}

func (r *TextRenderer) statBox(n int, label string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Stat.Render(r.printer.Sprintf("%d", n)),
		r.styles.Label.Render(label),
	)
	return r.styles.Box.Width(20).Align(lipgloss.Center).Render(content)
}

// table lays out word, count and density columns padded to the widest cell.
func (r *TextRenderer) table(words []core.TopWord) string {
	headers := [3]string{"WORD", "COUNT", "DENSITY"}
	rows := make([][3]string, len(words))
	widths := [3]int{len(headers[0]), len(headers[1]), len(headers[2])}

	for i, tw := range words {
		rows[i] = [3]string{
			displayWord(tw.Word),
			r.printer.Sprintf("%d", tw.Count),
			formatDensity(tw.Density),
		}
		for c, cell := range rows[i] {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow := func(cells [3]string, st lipgloss.Style) {
		line := padRight(cells[0], widths[0]) + "  " +
			padLeft(cells[1], widths[1]) + "  " +
			padLeft(cells[2], widths[2])
		b.WriteString(st.Render(line))
		b.WriteString("\n")
	}

	writeRow(headers, r.styles.Header)
	for _, row := range rows {
		writeRow(row, r.styles.Normal)
	}
	return b.String()
}

// displayWord capitalizes the first letter for display only.
func displayWord(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if first == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(first)) + w[size:]
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}
