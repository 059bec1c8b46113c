package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/prefs"
	"github.com/gaurav-prasanna/textkit/core/style"
)

func sampleReport() core.Report {
	return core.Report{
		ID:          "0b7c6f1e-1111-2222-3333-444455556666",
		Source:      "https://example.com/post",
		Title:       "Cats | Dogs",
		GeneratedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Result: &core.AnalysisResult{
			TotalWordCount:         6,
			TotalCharCount:         23,
			TotalCharCountNoSpaces: 18,
			Preview:                "the the the cat cat dog",
			TopWords: []core.TopWord{
				{Word: "cat", Count: 2, Density: 100.0 / 3},
				{Word: "dog", Count: 1, Density: 100.0 / 6},
			},
		},
	}
}

func TestRenderers_RejectMissingResult(t *testing.T) {
	renderers := []core.Renderer{
		NewJSONRenderer(), NewMarkdownRenderer(), NewPDFRenderer(), NewTextRenderer(nil),
	}
	for _, r := range renderers {
		_, err := r.Render(core.Report{Source: "text"})
		assert.Error(t, err, r.Extension())
	}
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
	assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
	assert.Equal(t, ".txt", NewTextRenderer(nil).Extension())
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(sampleReport())
	require.NoError(t, err)

	var got core.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleReport(), got)
	assert.Contains(t, string(data), `"total_char_count_no_spaces": 18`)
	assert.Contains(t, string(data), `"top_words": [`)
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleReport())
	require.NoError(t, err)
	md := string(data)

	assert.True(t, strings.HasPrefix(md, "# Word frequency report\n"))
	assert.Contains(t, md, "- **Source:** https://example.com/post")
	assert.Contains(t, md, `- **Title:** Cats \| Dogs`)
	assert.Contains(t, md, "- **Generated:** 2026-10-18T12:00:00Z")
	assert.Contains(t, md, "| 6 | 23 | 18 |")
	assert.Contains(t, md, "## Top 2 words")
	assert.Contains(t, md, "| 1 | cat | 2 | 33.33% |")
	assert.Contains(t, md, "| 2 | dog | 1 | 16.67% |")
	assert.Contains(t, md, "> the the the cat cat dog")
}

func TestMarkdownRenderer_NoTopWords(t *testing.T) {
	r := sampleReport()
	r.Result.TopWords = nil
	r.Result.Preview = ""

	data, err := NewMarkdownRenderer().Render(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Top ")
	assert.Contains(t, string(data), "> No preview available.")
}

func TestPDFRenderer(t *testing.T) {
	r := sampleReport()
	r.Title = "Café déjà vu"
	data, err := NewPDFRenderer().Render(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestTextRenderer(t *testing.T) {
	for _, th := range []prefs.Theme{prefs.Light, prefs.Dark} {
		data, err := NewTextRenderer(style.NewStyles(style.ThemeFor(th))).Render(sampleReport())
		require.NoError(t, err)
		out := string(data)

		assert.Contains(t, out, "Analysis Complete")
		assert.Contains(t, out, "Total Words")
		assert.Contains(t, out, "Chars (no spaces)")
		assert.Contains(t, out, "Top 2 Words")
		assert.Contains(t, out, "Cat")
		assert.Contains(t, out, "33.33%")
		assert.Contains(t, out, stopWordNote)
		assert.Contains(t, out, "the the the cat cat dog")
	}
}

func TestTextRenderer_GroupsThousands(t *testing.T) {
	r := sampleReport()
	r.Result.TotalWordCount = 12345
	data, err := NewTextRenderer(nil).Render(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "12,345")
}

func TestDisplayWord(t *testing.T) {
	assert.Equal(t, "Don't", displayWord("don't"))
	assert.Equal(t, "", displayWord(""))
}
