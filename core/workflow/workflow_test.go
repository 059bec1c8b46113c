package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/analyze"
	"github.com/gaurav-prasanna/textkit/core/extract"
	"github.com/gaurav-prasanna/textkit/core/fetch"
)

type stubFetcher struct {
	html  string
	err   error
	calls int
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: s.html}, nil
}

func newRunner(f core.Fetcher) *Runner {
	return NewRunner(f, extract.New(), analyze.Default())
}

func TestRun_URLMode(t *testing.T) {
	f := &stubFetcher{html: `<html><head><title>Gophers</title></head><body>
		<nav>menu menu menu</nav>
		<article>Gophers dig tunnels. Gophers love tunnels.</article></body></html>`}

	out := newRunner(f).Run(context.Background(), Request{URL: "example.com/gophers"})

	require.True(t, out.OK(), out.Message)
	assert.Equal(t, []State{Idle, Fetching, Extracting, Analyzing, Done}, out.Trace)
	assert.Equal(t, "https://example.com/gophers", out.Source)
	assert.Equal(t, "Gophers", out.Page.Title)
	assert.Equal(t, 6, out.Result.TotalWordCount)
	require.NotEmpty(t, out.Result.TopWords)
	assert.Equal(t, "gophers", out.Result.TopWords[0].Word)
	assert.Equal(t, 2, out.Result.TopWords[0].Count)
}

func TestRun_TextMode(t *testing.T) {
	f := &stubFetcher{}
	out := newRunner(f).Run(context.Background(), Request{Text: "the the the cat cat dog", FromText: true})

	require.True(t, out.OK())
	assert.Equal(t, []State{Idle, Analyzing, Done}, out.Trace)
	assert.Equal(t, "text", out.Source)
	assert.Nil(t, out.Page)
	assert.Zero(t, f.calls)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		fetcher *stubFetcher
		trace   []State
		kind    core.Kind
		message string
	}{
		{
			name:    "missing URL",
			req:     Request{URL: "  "},
			fetcher: &stubFetcher{},
			trace:   []State{Idle, Failed},
			kind:    core.KindValidation,
			message: "Please enter a valid URL.",
		},
		{
			name:    "missing text",
			req:     Request{Text: " \n ", FromText: true},
			fetcher: &stubFetcher{},
			trace:   []State{Idle, Failed},
			kind:    core.KindValidation,
			message: "Please paste some text to analyze.",
		},
		{
			name:    "bad status",
			req:     Request{URL: "https://example.com"},
			fetcher: &stubFetcher{err: &fetch.StatusError{Code: 404, URL: "https://example.com"}},
			trace:   []State{Idle, Fetching, Failed},
			kind:    core.KindNetwork,
			message: "Failed to fetch the URL. Status: 404",
		},
		{
			name:    "transport",
			req:     Request{URL: "https://example.com"},
			fetcher: &stubFetcher{err: fmt.Errorf("%w: %w", fetch.ErrTransport, errors.New("connection refused"))},
			trace:   []State{Idle, Fetching, Failed},
			kind:    core.KindNetwork,
			message: fetch.ErrTransport.UserMessage(),
		},
		{
			name:    "no content",
			req:     Request{URL: "https://example.com"},
			fetcher: &stubFetcher{html: `<html><body><nav>menu</nav></body></html>`},
			trace:   []State{Idle, Fetching, Extracting, Failed},
			kind:    core.KindContent,
			message: extract.ErrNoContent.UserMessage(),
		},
		{
			name:    "punctuation is still content",
			req:     Request{Text: "!!! ???", FromText: true},
			fetcher: &stubFetcher{},
			trace:   []State{Idle, Analyzing, Done},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newRunner(tt.fetcher).Run(context.Background(), tt.req)
			assert.Equal(t, tt.trace, out.Trace)
			if tt.trace[len(tt.trace)-1] == Done {
				assert.True(t, out.OK())
				assert.Empty(t, out.Result.TopWords)
				return
			}
			assert.Equal(t, Failed, out.State)
			assert.Nil(t, out.Result)
			assert.Error(t, out.Err)
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.message, out.Message)
		})
	}
}

func TestRun_AnalyzeFailure(t *testing.T) {
	r := NewRunner(&stubFetcher{}, extract.New(), failingAnalyzer{})
	out := r.Run(context.Background(), Request{Text: "words", FromText: true})

	assert.Equal(t, []State{Idle, Analyzing, Failed}, out.Trace)
	assert.Equal(t, core.KindContent, out.Kind)
	assert.Equal(t, analyze.ErrEmptyContent.UserMessage(), out.Message)
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(string) (*core.AnalysisResult, error) {
	return nil, analyze.ErrEmptyContent
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "fetching", Fetching.String())
	assert.Equal(t, "error", Failed.String())
	assert.Equal(t, "unknown", State(99).String())
}
