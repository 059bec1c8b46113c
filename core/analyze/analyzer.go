// Package analyze implements the word-frequency analyzer.
// Text is normalized once (whitespace runs collapsed, ends trimmed) and
// every count, the preview and the ranking are computed over that string.
package analyze

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/textkit/core"
)

// ErrEmptyContent is returned when the normalized text is empty.
var ErrEmptyContent = core.NewError(core.KindContent, "Could not extract any text content from the article.")

const (
	DefaultTopN          = 10
	DefaultPreviewLength = 300
	previewEllipsis      = "..."
)

// wordRegex matches runs of ASCII letters and apostrophes on word
// boundaries. Digits and punctuation-only tokens never match.
var wordRegex = regexp.MustCompile(`\b[a-z']+\b`)

// Options tunes an Analyzer.
type Options struct {
	StopWords     StopWords // nil uses DefaultStopWords
	TopN          int       // <= 0 uses DefaultTopN
	PreviewLength int       // <= 0 uses DefaultPreviewLength
}

// Analyzer computes word statistics.
type Analyzer struct {
	stopWords     StopWords
	topN          int
	previewLength int
}

var _ core.Analyzer = (*Analyzer)(nil)

// New creates an Analyzer from opts, filling in defaults.
func New(opts Options) *Analyzer {
	a := &Analyzer{
		stopWords:     opts.StopWords,
		topN:          opts.TopN,
		previewLength: opts.PreviewLength,
	}
	if a.stopWords == nil {
		a.stopWords = DefaultStopWords()
	}
	if a.topN <= 0 {
		a.topN = DefaultTopN
	}
	if a.previewLength <= 0 {
		a.previewLength = DefaultPreviewLength
	}
	return a
}

// Default creates an Analyzer with the built-in stop words and limits.
func Default() *Analyzer {
	return New(Options{})
}

// Analyze computes the statistics of text.
func (a *Analyzer) Analyze(text string) (*core.AnalysisResult, error) {
	clean := Normalize(text)
	if clean == "" {
		return nil, ErrEmptyContent
	}

	total := len(strings.Fields(clean))
	return &core.AnalysisResult{
		TotalWordCount:         total,
		TotalCharCount:         utf8.RuneCountInString(clean),
		TotalCharCountNoSpaces: countNonSpace(clean),
		Preview:                Preview(clean, a.previewLength),
		TopWords:               Rank(a.Frequencies(clean), total, a.topN),
	}, nil
}

// Normalize collapses every whitespace run to a single space and trims
// both ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Tokenize lowercases text and returns its candidate words in order.
func Tokenize(text string) []string {
	return wordRegex.FindAllString(strings.ToLower(text), -1)
}

// Frequency is a word and its occurrence count.
type Frequency struct {
	Word  string
	Count int
}

// Frequencies counts the words of text that survive the stop-word and
// length filters. The result is in first-seen order.
func (a *Analyzer) Frequencies(text string) []Frequency {
	var freqs []*Frequency
	lookup := make(map[string]*Frequency)

	for _, w := range Tokenize(text) {
		if len(w) <= 1 || a.stopWords.Contains(w) {
			continue
		}
		if f, ok := lookup[w]; ok {
			f.Count++
			continue
		}
		f := &Frequency{Word: w, Count: 1}
		freqs = append(freqs, f)
		lookup[w] = f
	}

	out := make([]Frequency, len(freqs))
	for i, f := range freqs {
		out[i] = *f
	}
	return out
}

// Rank sorts freqs by descending count, keeping first-seen order among
// equal counts, and returns at most n entries with their density against
// totalWords.
func Rank(freqs []Frequency, totalWords, n int) []core.TopWord {
	sorted := slices.Clone(freqs)
	slices.SortStableFunc(sorted, func(x, y Frequency) int {
		return y.Count - x.Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	top := make([]core.TopWord, len(sorted))
	for i, f := range sorted {
		top[i] = core.TopWord{
			Word:    f.Word,
			Count:   f.Count,
			Density: density(f.Count, totalWords),
		}
	}
	return top
}

func density(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Preview returns the first n runes of text, with an ellipsis appended
// only when text is longer than n.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + previewEllipsis
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
