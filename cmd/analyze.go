// Package cmd: analyze command.
// Runs the word-frequency workflow on a URL or on pasted text:
// fetch → extract → analyze → render → print or write.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/normalize"
	"github.com/gaurav-prasanna/textkit/core/output"
	"github.com/gaurav-prasanna/textkit/core/render"
	"github.com/gaurav-prasanna/textkit/core/workflow"
	"github.com/gaurav-prasanna/textkit/logger"
)

// Output formats accepted by --format.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatPDF      = "pdf"
)

// Analyze flag variables.
var (
	flagText        string
	flagFile        string
	flagFormat      string
	flagOutputDir   string
	flagSaveContent bool
	flagTop         int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Count words and rank the most frequent ones",
	Long: `Analyze fetches a webpage, finds its main article content and reports
word counts, character counts, a preview and the most frequent words.
Common English words are excluded from the ranking.

Pass --text or --file to analyze text directly instead of a URL.

Examples:
  textkit analyze example.com/blog/post
  textkit analyze https://example.com --format json --output_dir ./out
  textkit analyze --file essay.txt --top 20
  pbpaste | textkit analyze --file -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags.
	analyzeCmd.Flags().StringVar(&flagText, "text", "", "Analyze this text instead of a URL")
	analyzeCmd.Flags().StringVar(&flagFile, "file", "", `Analyze text read from a file ("-" for stdin)`)

	// Output flags.
	analyzeCmd.Flags().StringVar(&flagFormat, "format", formatText, "Report format: text, json, markdown or pdf")
	analyzeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Write the report to this directory instead of stdout")
	analyzeCmd.Flags().BoolVar(&flagSaveContent, "save-content", false, "Also save the analyzed article as Markdown (URL input only)")
	analyzeCmd.Flags().IntVar(&flagTop, "top", 0, "Number of top words to list (default from preferences, else 10)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	if err := validateAnalyzeFlags(req); err != nil {
		return err
	}

	renderer, err := selectRenderer(flagFormat)
	if err != nil {
		return err
	}

	runner, err := buildRunner(store.Prefs(), flagTop)
	if err != nil {
		return err
	}

	out := runner.Run(context.Background(), req)
	if !out.OK() {
		logger.Debug("analysis failed", "trace", out.Trace, "kind", out.Kind)
		return out.Err
	}

	title := ""
	if out.Page != nil {
		title = out.Page.Title
	}
	report := core.NewReport(out.Source, title, out.Result)

	data, err := renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	// Terminal-friendly formats go to stdout unless a directory is given.
	toStdout := flagOutputDir == "" && flagFormat != formatPDF
	if toStdout {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
		if !flagSaveContent {
			return nil
		}
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if !toStdout {
		path, err := writer.WriteReport(report, data, renderer.Extension())
		if err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), "Written: "+path)
	}

	if flagSaveContent {
		path, err := saveContent(writer, report, out)
		if err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), "Written: "+path)
	}
	return nil
}

// buildRequest turns the positional URL or the --text/--file flags into a
// workflow request.
func buildRequest(cmd *cobra.Command, args []string) (workflow.Request, error) {
	hasURL := len(args) == 1
	hasText := cmd.Flags().Changed("text")
	hasFile := flagFile != ""

	switch {
	case hasText && hasFile:
		return workflow.Request{}, fmt.Errorf("--text and --file are mutually exclusive")
	case hasURL && (hasText || hasFile):
		return workflow.Request{}, fmt.Errorf("a URL cannot be combined with --text or --file")
	case hasText:
		return workflow.Request{Text: flagText, FromText: true}, nil
	case hasFile:
		var fileArgs []string
		if flagFile != "-" {
			fileArgs = []string{flagFile}
		}
		text, err := readInput(cmd, fileArgs)
		if err != nil {
			return workflow.Request{}, err
		}
		return workflow.Request{Text: text, FromText: true}, nil
	case hasURL:
		return workflow.Request{URL: args[0]}, nil
	default:
		// An empty URL fails validation with the usual message.
		return workflow.Request{}, nil
	}
}

func validateAnalyzeFlags(req workflow.Request) error {
	if flagSaveContent && req.FromText {
		return fmt.Errorf("--save-content requires a URL")
	}
	if flagTop < 0 {
		return fmt.Errorf("--top must be positive (got %d)", flagTop)
	}
	return nil
}

// selectRenderer creates the Renderer for the named format.
func selectRenderer(name string) (core.Renderer, error) {
	switch name {
	case formatText:
		return render.NewTextRenderer(styles), nil
	case formatJSON:
		return render.NewJSONRenderer(), nil
	case formatMarkdown:
		return render.NewMarkdownRenderer(), nil
	case formatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: want text, json, markdown or pdf", name)
	}
}

// saveContent writes the analyzed region of the page as Markdown.
func saveContent(w *output.Writer, report core.Report, out *workflow.Outcome) (string, error) {
	if out.Page == nil {
		return "", fmt.Errorf("no page content to save")
	}
	md, err := normalize.New().ContentDocument(out.Page.Title, out.Source, out.Page.HTML)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return w.WriteContent(report, md)
}
