// Package style provides the light and dark colour themes used for
// terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gaurav-prasanna/textkit/core/prefs"
)

// Theme defines the colour palette for terminal output.
type Theme struct {
	Name prefs.Theme

	// Primary is the main accent colour.
	Primary lipgloss.Color
	// PrimaryStrong is used for headline numbers.
	PrimaryStrong lipgloss.Color
	Text          lipgloss.Color
	Muted         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
}

// LightTheme is the default palette.
func LightTheme() *Theme {
	return &Theme{
		Name:          prefs.Light,
		Primary:       lipgloss.Color("#0D9488"), // teal
		PrimaryStrong: lipgloss.Color("#0F766E"),
		Text:          lipgloss.Color("#1F2937"),
		Muted:         lipgloss.Color("#6B7280"),
		Success:       lipgloss.Color("#16A34A"),
		Warning:       lipgloss.Color("#CA8A04"),
		Error:         lipgloss.Color("#DC2626"),
		Border:        lipgloss.Color("#D1D5DB"),
	}
}

// DarkTheme is the palette for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Name:          prefs.Dark,
		Primary:       lipgloss.Color("#2DD4BF"),
		PrimaryStrong: lipgloss.Color("#5EEAD4"),
		Text:          lipgloss.Color("#E5E7EB"),
		Muted:         lipgloss.Color("#9CA3AF"),
		Success:       lipgloss.Color("#4ADE80"),
		Warning:       lipgloss.Color("#FACC15"),
		Error:         lipgloss.Color("#F87171"),
		Border:        lipgloss.Color("#4B5563"),
	}
}

// ThemeFor returns the palette for a persisted theme name.
func ThemeFor(t prefs.Theme) *Theme {
	if t == prefs.Dark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title   lipgloss.Style
	Stat    lipgloss.Style
	Label   lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Preview lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = LightTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Stat: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.PrimaryStrong),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Preview: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
