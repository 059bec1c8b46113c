package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize(`<article><h2>Intro</h2><p>Hello <strong>world</strong>.</p></article>`)
	require.NoError(t, err)

	assert.Contains(t, md, "## Intro")
	assert.Contains(t, md, "Hello **world**.")
	assert.Equal(t, strings.TrimSpace(md), md)
}

func TestContentDocument(t *testing.T) {
	doc, err := New().ContentDocument("My Post", "https://example.com/post", `<main><p>Body text</p></main>`)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# My Post\n\n> Source: https://example.com/post\n\n"))
	assert.Contains(t, doc, "Body text")
	assert.True(t, strings.HasSuffix(doc, "\n"))
}

func TestContentDocument_NoTitle(t *testing.T) {
	doc, err := New().ContentDocument("", "https://example.com", `<p>x</p>`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "> Source: https://example.com"))
}
