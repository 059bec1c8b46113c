// Package cmd: format command.
// Reads text from a file or stdin, applies the chosen mode and layout,
// then prints, writes and/or copies the result.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/core/clipboard"
	"github.com/gaurav-prasanna/textkit/core/format"
	"github.com/gaurav-prasanna/textkit/core/output"
	"github.com/gaurav-prasanna/textkit/logger"
)

// Format flag variables.
var (
	flagMode   = format.Both
	flagLayout = format.Newline
	flagCopy   bool
	flagOutput string
)

// newClipboard is swapped out in tests.
var newClipboard = clipboard.New

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Reformat text line by line",
	Long: `Format reads text from a file (or stdin) and transforms it.

Modes:
  both        lowercase, spaces to hyphens, trailing comma (default)
  hyphen      lowercase, spaces to hyphens
  comma       lowercase, trailing comma
  uppercase   UPPERCASE everything
  lowercase   lowercase everything
  capitalize  Title Case Every Word

For both, hyphen and comma, blank lines are dropped and --layout picks
whether results are joined by newlines or by single spaces.

Examples:
  pbpaste | textkit format --mode hyphen
  textkit format tags.txt --mode both --layout single --copy
  textkit format notes.txt --mode capitalize --output notes-title.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().Var(&flagMode, "mode", "Format mode: both, hyphen, comma, uppercase, lowercase, capitalize")
	formatCmd.Flags().Var(&flagLayout, "layout", "Line layout for both/hyphen/comma: newline or single")
	formatCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the result to the clipboard")
	formatCmd.Flags().StringVar(&flagOutput, "output", "", "Write the result to this file instead of stdout")
}

func runFormat(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if !flagMode.UsesLayout() && cmd.Flags().Changed("layout") {
		logger.Debug("layout ignored", "mode", flagMode, "layout", flagLayout)
	}

	result, err := format.Run(format.Request{Text: text, Mode: flagMode, Layout: flagLayout})
	if err != nil {
		return err
	}

	out := withNewline(result)
	if flagOutput != "" {
		path, err := writeOutput(flagOutput, out)
		if err != nil {
			return err
		}
		success(cmd.ErrOrStderr(), "Written: "+path)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	if flagCopy {
		copyResult(cmd.ErrOrStderr(), result)
	}
	return nil
}

// copyResult copies text and reports the outcome. A failed copy is only a
// notice; the formatted output has already been delivered.
func copyResult(w io.Writer, text string) {
	if err := newClipboard().Copy(text); err != nil {
		logger.Debug("clipboard write failed", "err", err)
		notify(w, core.UserMessage(err))
		return
	}
	success(w, "Copied!")
}

// writeOutput writes text to the file at path, creating its directory.
func writeOutput(path, text string) (string, error) {
	w, err := output.New(filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("initializing output writer: %w", err)
	}
	return w.WriteText(filepath.Base(path), text)
}

// withNewline terminates s with exactly one trailing newline unless it
// already ends in one. Case modes keep the input's own final newline.
func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// readInput returns the contents of args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
