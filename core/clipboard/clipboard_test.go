package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/textkit/core"
)

type fakeWriter struct {
	got string
	err error
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

func TestCopy(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewWithWriter(w).Copy("hello-world,"))
	assert.Equal(t, "hello-world,", w.got)
}

func TestCopy_NothingToCopy(t *testing.T) {
	w := &fakeWriter{}
	err := NewWithWriter(w).Copy(" \n ")
	assert.ErrorIs(t, err, ErrNothingToCopy)
	assert.Equal(t, core.KindClipboard, core.Classify(err))
	assert.Empty(t, w.got)
}

func TestCopy_PlatformFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("permission denied")}
	err := NewWithWriter(w).Copy("text")
	assert.ErrorIs(t, err, ErrCopyFailed)
	assert.Equal(t, "Failed to copy!", core.UserMessage(err))
	assert.Contains(t, err.Error(), "permission denied")
}
