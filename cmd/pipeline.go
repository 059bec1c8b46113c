package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/textkit/core/analyze"
	"github.com/gaurav-prasanna/textkit/core/extract"
	"github.com/gaurav-prasanna/textkit/core/fetch"
	"github.com/gaurav-prasanna/textkit/core/prefs"
	"github.com/gaurav-prasanna/textkit/core/workflow"
)

// buildRunner wires fetcher, extractor and analyzer from preferences.
// topN > 0 overrides the configured top-N.
func buildRunner(p prefs.Prefs, topN int) (*workflow.Runner, error) {
	analyzer, err := buildAnalyzer(p.Analyze, topN)
	if err != nil {
		return nil, err
	}

	extractor, err := extract.NewWithOptions(extract.Options{
		ContentSelectors: p.Extract.ContentSelectors,
		NoiseSelectors:   p.Extract.NoiseSelectors,
	})
	if err != nil {
		return nil, err
	}

	fetcher := fetch.NewWithOptions(fetch.Options{
		RelayURL: p.Fetch.RelayURL,
		Timeout:  p.FetchTimeout(),
	})

	return workflow.NewRunner(fetcher, extractor, analyzer), nil
}

func buildAnalyzer(p prefs.AnalyzePrefs, topN int) (*analyze.Analyzer, error) {
	stop := analyze.DefaultStopWords()
	if p.ReplaceStopWords {
		stop = analyze.NewStopWords()
	}
	stop.Add(p.StopWords...)

	if p.StopWordsFile != "" {
		f, err := os.Open(p.StopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("opening stop words file: %w", err)
		}
		defer f.Close()

		extra, err := analyze.LoadStopWords(f)
		if err != nil {
			return nil, fmt.Errorf("reading stop words file %s: %w", p.StopWordsFile, err)
		}
		for w := range extra {
			stop.Add(w)
		}
	}

	if topN <= 0 {
		topN = p.TopN
	}
	return analyze.New(analyze.Options{StopWords: stop, TopN: topN}), nil
}
