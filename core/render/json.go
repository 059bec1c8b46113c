// Package render: JSON renderer.
// Emits the Report as indented JSON for scripting and pipelines.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/textkit/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the report.
func (r *JSONRenderer) Render(report core.Report) ([]byte, error) {
	if report.Result == nil {
		return nil, errNoResult
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
