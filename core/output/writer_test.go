package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/textkit/core"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		report   core.Report
		expected string
	}{
		{
			name:     "url with path",
			report:   core.Report{Source: "https://example.com/docs/intro/"},
			expected: "example_com_docs_intro",
		},
		{
			name:     "root url",
			report:   core.Report{Source: "https://blog.example.org"},
			expected: "blog_example_org",
		},
		{
			name:     "port and dashes",
			report:   core.Report{Source: "http://localhost:8080/my-post"},
			expected: "localhost_8080_my_post",
		},
		{
			name:     "text source",
			report:   core.Report{Source: core.TextSource, ID: "0b7c6f1e-1111-2222-3333-444455556666"},
			expected: "text-0b7c6f1e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseName(tt.report))
		})
	}
}

func TestWriteReportAndContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir)
	require.NoError(t, err)

	report := core.Report{Source: "https://example.com/post"}

	path, err := w.WriteReport(report, []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_post.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	path, err = w.WriteContent(report, "# Post\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_post.content.md"), path)
}

func TestWriteText(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteText("formatted.txt", "a-b,")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a-b,", string(data))
}

func TestNew_DefaultsToWorkingDir(t *testing.T) {
	w, err := New("")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, w.OutputDir)
}
