package core

import (
	"time"

	"github.com/google/uuid"
)

// TextSource is the Report.Source of pasted or piped text.
const TextSource = "text"

// NewReport stamps result with a fresh ID and the current UTC time.
func NewReport(source, title string, result *AnalysisResult) Report {
	return Report{
		ID:          uuid.NewString(),
		Source:      source,
		Title:       title,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Result:      result,
	}
}

// ShortID returns the first block of the report ID, for file names.
func (r Report) ShortID() string {
	if len(r.ID) < 8 {
		return r.ID
	}
	return r.ID[:8]
}
