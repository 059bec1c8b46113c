// Package normalize converts the extracted main-content HTML into Markdown.
// It backs the `analyze --save-content` export: the analyzed region is
// written next to the report so users can see exactly what was counted.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// ContentDocument renders the extracted region as a standalone Markdown
// document headed by the page title and its source URL.
func (n *MarkdownNormalizer) ContentDocument(title, source, html string) (string, error) {
	body, err := n.Normalize(html)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	fmt.Fprintf(&b, "> Source: %s\n\n", source)
	b.WriteString(body)
	b.WriteString("\n")
	return b.String(), nil
}
