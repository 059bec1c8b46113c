package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Sentinel errors for option parsing.
var (
	ErrUnknownMode   = errors.New("unknown format mode")
	ErrUnknownLayout = errors.New("unknown layout")
)

// Mode selects the transform applied to the input text.
type Mode int

const (
	// Both hyphenates each line and appends a trailing comma.
	Both Mode = iota
	Hyphen
	Comma
	Uppercase
	Lowercase
	// Capitalize title-cases every space-separated word.
	Capitalize
)

var modeNames = map[Mode]string{
	Both:       "both",
	Hyphen:     "hyphen",
	Comma:      "comma",
	Uppercase:  "uppercase",
	Lowercase:  "lowercase",
	Capitalize: "capitalize",
}

// Modes lists every mode in menu order.
var Modes = []Mode{Both, Hyphen, Comma, Uppercase, Lowercase, Capitalize}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Both, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMode, s, strings.Join(ModeNames(), ", "))
}

// ModeNames returns the names of all modes in menu order.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}
	return names
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// UsesLayout reports whether the layout option affects this mode.
func (m Mode) UsesLayout() bool {
	return m == Both || m == Hyphen || m == Comma
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// Layout controls how hyphen/comma/both output lines are joined.
type Layout int

const (
	// Newline joins formatted lines with "\n".
	Newline Layout = iota
	// Single joins formatted lines with a single space.
	Single
)

// ParseLayout maps a layout name (case-insensitive) to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newline":
		return Newline, nil
	case "single":
		return Single, nil
	default:
		return Newline, fmt.Errorf("%w: %q (want newline or single)", ErrUnknownLayout, s)
	}
}

func (l Layout) String() string {
	switch l {
	case Newline:
		return "newline"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Separator returns the string placed between formatted lines.
func (l Layout) Separator() string {
	if l == Single {
		return " "
	}
	return "\n"
}

// Set implements pflag.Value.
func (l *Layout) Set(s string) error {
	parsed, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value.
func (l *Layout) Type() string { return "layout" }

var (
	_ pflag.Value = (*Mode)(nil)
	_ pflag.Value = (*Layout)(nil)
)
