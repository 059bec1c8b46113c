// Package workflow drives one analyzer run through its states:
//
//	URL mode:  idle -> fetching -> extracting -> analyzing -> done | error
//	Text mode: idle -> analyzing -> done | error
//
// Every failure is caught here and turned into an Outcome carrying a short
// user-facing message, so callers never see a raw error escape a run.
package workflow

import (
	"context"
	"strings"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/extract"
	"github.com/gaurav-prasanna/textkit/core/fetch"
	"github.com/gaurav-prasanna/textkit/logger"
)

// ErrMissingText is reported when text mode gets blank input.
var ErrMissingText = core.NewError(core.KindValidation, "Please paste some text to analyze.")

// State is a step of the analyzer workflow.
type State int

const (
	Idle State = iota
	Fetching
	Extracting
	Analyzing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Extracting:
		return "extracting"
	case Analyzing:
		return "analyzing"
	case Done:
		return "done"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Request selects the input. Text mode is used when FromText is set,
// otherwise URL is fetched.
type Request struct {
	URL      string
	Text     string
	FromText bool
}

// Outcome is the terminal result of a run.
type Outcome struct {
	State   State // Done or Failed
	Trace   []State
	Result  *core.AnalysisResult
	Page    *extract.Page // URL mode only
	Source  string        // normalized URL, or "text"
	Err     error
	Kind    core.Kind
	Message string
}

// OK reports whether the run finished in the done state.
func (o *Outcome) OK() bool { return o.State == Done }

// PageExtractor is the extractor contract the workflow needs.
type PageExtractor interface {
	ExtractPage(html string) (*extract.Page, error)
}

// Runner wires the pipeline stages together.
type Runner struct {
	fetcher   core.Fetcher
	extractor PageExtractor
	analyzer  core.Analyzer
}

// NewRunner creates a Runner from its stages.
func NewRunner(f core.Fetcher, e PageExtractor, a core.Analyzer) *Runner {
	return &Runner{fetcher: f, extractor: e, analyzer: a}
}

// run tracks state transitions for a single invocation.
type run struct {
	out *Outcome
}

func (r *run) enter(s State) {
	logger.ForComponent("workflow").Debug("state", "from", r.out.Trace[len(r.out.Trace)-1], "to", s)
	r.out.Trace = append(r.out.Trace, s)
	r.out.State = s
}

func (r *run) fail(err error) *Outcome {
	r.enter(Failed)
	r.out.Err = err
	r.out.Kind = core.Classify(err)
	r.out.Message = core.UserMessage(err)
	return r.out
}

// Run executes one request. Runs are independent: a second call while one
// is in flight starts a second request, and the caller keeps whichever
// outcome it receives last.
func (rn *Runner) Run(ctx context.Context, req Request) *Outcome {
	r := &run{out: &Outcome{State: Idle, Trace: []State{Idle}}}

	text := req.Text
	if req.FromText {
		r.out.Source = "text"
		if strings.TrimSpace(text) == "" {
			return r.fail(ErrMissingText)
		}
	} else {
		target, err := fetch.NormalizeTarget(req.URL)
		if err != nil {
			return r.fail(err)
		}
		r.out.Source = target

		r.enter(Fetching)
		res, err := rn.fetcher.Fetch(ctx, target)
		if err != nil {
			return r.fail(err)
		}

		r.enter(Extracting)
		page, err := rn.extractor.ExtractPage(res.HTML)
		if err != nil {
			return r.fail(err)
		}
		r.out.Page = page
		text = page.Text
	}

	r.enter(Analyzing)
	result, err := rn.analyzer.Analyze(text)
	if err != nil {
		return r.fail(err)
	}

	r.enter(Done)
	r.out.Result = result
	return r.out
}
