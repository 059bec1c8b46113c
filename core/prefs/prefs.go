// Package prefs persists textkit preferences in a TOML file.
// The file is read once at startup and rewritten on every change.
// Besides the theme it carries optional tuning for the analyzer pipeline
// (relay URL, timeout, stop words, extractor selectors).
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gaurav-prasanna/textkit/core"
)

const fileName = "config.toml"

// Sentinel errors for preferences.
var (
	ErrUnknownTheme = core.NewError(core.KindValidation, `Theme must be "light" or "dark".`)
	ErrConfigParse  = errors.New("failed to parse config")
)

// Theme is the persisted colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme maps a name to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Prefs is the on-disk document.
type Prefs struct {
	Theme   Theme        `toml:"theme"`
	Fetch   FetchPrefs   `toml:"fetch"`
	Analyze AnalyzePrefs `toml:"analyze"`
	Extract ExtractPrefs `toml:"extract"`
}

type FetchPrefs struct {
	RelayURL string `toml:"relay_url,omitempty"`
	Timeout  string `toml:"timeout,omitempty"` // Go duration, e.g. "30s"
}

type AnalyzePrefs struct {
	StopWords        []string `toml:"stop_words,omitempty"`      // added to the built-in list
	StopWordsFile    string   `toml:"stop_words_file,omitempty"` // one word per line
	ReplaceStopWords bool     `toml:"replace_stop_words,omitempty"`
	TopN             int      `toml:"top_n,omitempty"`
}

type ExtractPrefs struct {
	ContentSelectors []string `toml:"content_selectors,omitempty"`
	NoiseSelectors   []string `toml:"noise_selectors,omitempty"`
}

// FetchTimeout parses Fetch.Timeout. Empty or invalid values yield 0 so
// the fetcher falls back to its default.
func (p *Prefs) FetchTimeout() time.Duration {
	if p.Fetch.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(p.Fetch.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Store is a file-backed Prefs.
type Store struct {
	path  string
	prefs Prefs
}

// DefaultDir returns ~/.textkit.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".textkit"), nil
}

// Open loads the preferences in dir, creating dir if needed. If dir is
// empty, DefaultDir is used. A missing file yields the defaults. An
// unparsable file yields the defaults and an error wrapping ErrConfigParse;
// the returned Store is usable in that case.
func Open(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	s := &Store{path: filepath.Join(dir, fileName)}
	if err := s.Load(); err != nil {
		if errors.Is(err, ErrConfigParse) {
			return s, err
		}
		return nil, err
	}
	return s, nil
}

// Load reads the file, keeping defaults for absent fields. An unknown
// theme value falls back to light.
func (s *Store) Load() error {
	s.prefs = Prefs{Theme: Light}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(data, &s.prefs); err != nil {
		s.prefs = Prefs{Theme: Light}
		return fmt.Errorf("%w: %s: %w", ErrConfigParse, s.path, err)
	}
	if t, err := ParseTheme(string(s.prefs.Theme)); err == nil {
		s.prefs.Theme = t
	} else {
		s.prefs.Theme = Light
	}
	return nil
}

// Save writes the preferences to disk.
func (s *Store) Save() error {
	data, err := toml.Marshal(s.prefs)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Prefs returns a copy of the loaded preferences.
func (s *Store) Prefs() Prefs { return s.prefs }

// Theme returns the active theme.
func (s *Store) Theme() Theme { return s.prefs.Theme }

// SetTheme stores t and persists immediately.
func (s *Store) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	s.prefs.Theme = t
	return s.Save()
}

// ToggleTheme flips the theme, persists it and returns the new value.
func (s *Store) ToggleTheme() (Theme, error) {
	next := s.prefs.Theme.Toggled()
	if err := s.SetTheme(next); err != nil {
		return s.prefs.Theme, err
	}
	return next, nil
}

// Path returns the preferences file path.
func (s *Store) Path() string { return s.path }
