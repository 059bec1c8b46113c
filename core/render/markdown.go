// Package render provides report renderers for textkit analyses.
// This file implements the Markdown renderer.
package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/textkit/core"
)

var errNoResult = errors.New("report has no analysis result")

// stopWordNote is printed under every top-words table.
const stopWordNote = `Common English words (e.g., "the", "a", "is") are excluded.`

// MarkdownRenderer writes the report as a Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown report.
func (r *MarkdownRenderer) Render(report core.Report) ([]byte, error) {
	res := report.Result
	if res == nil {
		return nil, errNoResult
	}

	var b strings.Builder
	b.WriteString("# Word frequency report\n\n")
	fmt.Fprintf(&b, "- **Source:** %s\n", report.Source)
	if report.Title != "" {
		fmt.Fprintf(&b, "- **Title:** %s\n", escapeCell(report.Title))
	}
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", report.GeneratedAt.Format(time.RFC3339))

	b.WriteString("| Total words | Total characters | Characters (no spaces) |\n")
	b.WriteString("|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", res.TotalWordCount, res.TotalCharCount, res.TotalCharCountNoSpaces)

	if len(res.TopWords) > 0 {
		fmt.Fprintf(&b, "## Top %d words\n\n", len(res.TopWords))
		b.WriteString("| # | Word | Count | Density |\n")
		b.WriteString("|---:|---|---:|---:|\n")
		for i, tw := range res.TopWords {
			fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", i+1, tw.Word, tw.Count, formatDensity(tw.Density))
		}
		fmt.Fprintf(&b, "\n_%s_\n\n", stopWordNote)
	}

	b.WriteString("## Content preview\n\n")
	fmt.Fprintf(&b, "> %s\n", previewOrPlaceholder(res.Preview))

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func formatDensity(d float64) string {
	return fmt.Sprintf("%.2f%%", d)
}

func previewOrPlaceholder(p string) string {
	if p == "" {
		return "No preview available."
	}
	return p
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
