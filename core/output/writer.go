// Package output handles file naming and writing for textkit outputs.
// Reports on a URL are named after it (example_com_blog_post.json);
// reports on pasted text are named text-<short id>.json.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/textkit/core"
)

// contentSuffix marks the Markdown export of the analyzed region.
const contentSuffix = ".content.md"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteReport writes rendered report data and returns the file path.
func (w *Writer) WriteReport(report core.Report, data []byte, ext string) (string, error) {
	return w.write(BaseName(report)+ext, data)
}

// WriteContent writes the Markdown export of the analyzed content.
func (w *Writer) WriteContent(report core.Report, markdown string) (string, error) {
	return w.write(BaseName(report)+contentSuffix, []byte(markdown))
}

// WriteText writes arbitrary text to name inside the output directory.
func (w *Writer) WriteText(name, text string) (string, error) {
	return w.write(name, []byte(text))
}

func (w *Writer) write(name string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// BaseName returns the extension-less file name for a report.
func BaseName(report core.Report) string {
	if report.Source == core.TextSource || report.Source == "" {
		return "text-" + report.ShortID()
	}
	return filenameFromURL(report.Source)
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
