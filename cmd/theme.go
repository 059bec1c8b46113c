package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/textkit/core/prefs"
	"github.com/gaurav-prasanna/textkit/core/style"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the colour theme",
	Long: `Theme prints the saved colour theme, or saves a new one.
The choice is stored in the preferences file and used by later runs.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.Light), string(prefs.Dark), "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
		return nil
	}

	var (
		next prefs.Theme
		err  error
	)
	if args[0] == "toggle" {
		next, err = store.ToggleTheme()
	} else {
		next, err = prefs.ParseTheme(args[0])
		if err == nil {
			err = store.SetTheme(next)
		}
	}
	if err != nil {
		return err
	}

	styles = style.NewStyles(style.ThemeFor(next))
	success(cmd.OutOrStdout(), fmt.Sprintf("Theme set to %s", next))
	return nil
}
