// Package clipboard copies formatted output to the system clipboard.
// A failed copy is a notice for the user, never a fatal error.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/gaurav-prasanna/textkit/core"
)

// Sentinel errors for clipboard writes.
var (
	ErrNothingToCopy = core.NewError(core.KindClipboard, "Nothing to copy!")
	ErrCopyFailed    = core.NewError(core.KindClipboard, "Failed to copy!")
)

// Writer is the platform clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Clipboard copies text through a Writer.
type Clipboard struct {
	w Writer
}

// New returns a Clipboard backed by the system clipboard.
func New() *Clipboard {
	return &Clipboard{w: systemWriter{}}
}

// NewWithWriter returns a Clipboard backed by w.
func NewWithWriter(w Writer) *Clipboard {
	return &Clipboard{w: w}
}

// Copy writes text to the clipboard. Blank text is rejected with
// ErrNothingToCopy; platform failures are wrapped in ErrCopyFailed.
func (c *Clipboard) Copy(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNothingToCopy
	}
	if err := c.w.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	return nil
}
