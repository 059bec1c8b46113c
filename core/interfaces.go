// Package core defines the shared types and stage interfaces for textkit.
// The analyzer pipeline is fetch -> extract -> analyze -> render; the
// formatter is a single pure transform and needs no interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// TopWord is one ranked entry of an analysis.
type TopWord struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Density float64 `json:"density"` // percent of TotalWordCount
}

// AnalysisResult holds the statistics computed over a normalized text.
type AnalysisResult struct {
	TotalWordCount         int       `json:"total_word_count"`
	TotalCharCount         int       `json:"total_char_count"`
	TotalCharCountNoSpaces int       `json:"total_char_count_no_spaces"`
	Preview                string    `json:"preview"`
	TopWords               []TopWord `json:"top_words"`
}

// Report wraps an AnalysisResult with the metadata needed to render it.
type Report struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"` // analyzed URL, or "text"
	Title       string          `json:"title,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Result      *AnalysisResult `json:"result"`
}

// Fetcher retrieves raw HTML for a target URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the readable main content out of raw HTML.
type Extractor interface {
	Extract(html string) (string, error)
}

// Analyzer computes word statistics over raw text.
type Analyzer interface {
	Analyze(text string) (*AnalysisResult, error)
}

// Renderer converts a Report into a final output format.
type Renderer interface {
	Render(report Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
