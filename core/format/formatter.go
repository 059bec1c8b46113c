// Package format implements the line formatter.
// It is a pure transform: callers check for empty input first and report
// ErrNoInput instead of calling Format.
package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gaurav-prasanna/textkit/core"
)

// ErrNoInput is returned by callers when the text to format is blank.
var ErrNoInput = core.NewError(core.KindValidation, "No input text found!")

// Request is a single formatting invocation.
type Request struct {
	Text   string
	Mode   Mode
	Layout Layout
}

// Run validates the request and formats it.
func Run(req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", ErrNoInput
	}
	return Format(req.Text, req.Mode, req.Layout), nil
}

// Format applies mode to text. layout only matters for Hyphen, Comma and Both.
func Format(text string, mode Mode, layout Layout) string {
	switch mode {
	case Uppercase:
		return upper(text)
	case Lowercase:
		return lower(text)
	case Capitalize:
		return capitalize(text)
	case Hyphen, Comma, Both:
		return formatLines(text, mode, layout)
	default:
		return text
	}
}

// capitalize title-cases each single-space separated word on each line.
// Blank lines and repeated spaces are kept as they are.
func capitalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		words := strings.Split(line, " ")
		for j, w := range words {
			words[j] = capitalizeWord(w)
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

func capitalizeWord(w string) string {
	if w == "" {
		return w
	}
	_, size := utf8.DecodeRuneInString(w)
	return upper(w[:size]) + lower(w[size:])
}

// upper and lower apply full Unicode case mapping, so "ß" upper-cases to
// "SS". A Caser is not safe for concurrent use; each call gets its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// formatLines trims and lowercases every non-blank line, decorates it for
// mode and joins the result with the layout separator. Blank lines are
// dropped, so the output may have fewer lines than the input.
func formatLines(text string, mode Mode, layout Layout) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = lower(line)

		switch mode {
		case Hyphen:
			line = hyphenate(line)
		case Comma:
			line += ","
		case Both:
			line = hyphenate(line) + ","
		}
		out = append(out, line)
	}
	return strings.Join(out, layout.Separator())
}

// hyphenate replaces every whitespace run with a single hyphen.
func hyphenate(line string) string {
	return strings.Join(strings.Fields(line), "-")
}
