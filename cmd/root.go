// Package cmd implements the CLI commands for textkit using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/prefs"
	"github.com/gaurav-prasanna/textkit/core/style"
	"github.com/gaurav-prasanna/textkit/logger"
)

// Persistent flag variables.
var (
	flagConfigDir string
	flagVerbose   bool
	flagTheme     string
)

// Loaded once per process by loadPrefs.
var (
	store  *prefs.Store
	styles *style.Styles
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "textkit: format text lines and analyze word frequency",
	Long: `textkit bundles two small text tools:

  format   reformat lines (hyphenate, add commas, change case)
  analyze  count words and rank the most frequent ones in a webpage or text

Usage:
  textkit format [file] [flags]
  textkit analyze [url] [flags]
  textkit theme [light|dark|toggle]`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadPrefs,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config_dir", "", "Preferences directory (default: ~/.textkit)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log pipeline steps to stderr")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Colour theme for this run only: light or dark")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPrefs initializes logging, reads the preferences file and resolves
// the theme for this run.
func loadPrefs(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.Init(logger.VerboseConfig())
	} else {
		logger.Init(logger.DefaultConfig())
	}

	s, err := prefs.Open(flagConfigDir)
	switch {
	case errors.Is(err, prefs.ErrConfigParse):
		logger.Warn("preferences file unreadable, using defaults", "path", s.Path(), "err", err)
	case err != nil:
		return fmt.Errorf("loading preferences: %w", err)
	}
	store = s

	theme := store.Theme()
	if flagTheme != "" {
		theme, err = prefs.ParseTheme(flagTheme)
		if err != nil {
			return err
		}
	}
	styles = style.NewStyles(style.ThemeFor(theme))

	logger.Debug("preferences loaded", "path", store.Path(), "theme", theme)
	return nil
}

// printError writes the user-facing form of err. Errors without a kind,
// such as cobra's flag errors, also get their detail on a second line.
func printError(w io.Writer, err error) {
	kind := core.Classify(err)
	logger.Debug("command failed", "kind", kind, "err", err)

	st := style.NewStyles(nil)
	if styles != nil {
		st = styles
	}
	fmt.Fprintln(w, st.Error.Render("✗ "+core.UserMessage(err)))
	if kind == core.KindUnknown {
		fmt.Fprintln(w, st.Muted.Render("  "+err.Error()))
	}
}

// notify prints a transient warning that does not fail the command.
func notify(w io.Writer, msg string) {
	st := style.NewStyles(nil)
	if styles != nil {
		st = styles
	}
	fmt.Fprintln(w, st.Warning.Render("! "+msg))
}

// success prints a confirmation line.
func success(w io.Writer, msg string) {
	st := style.NewStyles(nil)
	if styles != nil {
		st = styles
	}
	fmt.Fprintln(w, st.Success.Render("✓ "+msg))
}
