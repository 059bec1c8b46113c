package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	res := &AnalysisResult{TotalWordCount: 1}
	before := time.Now().UTC().Add(-time.Second)

	r := NewReport(TextSource, "", res)

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, TextSource, r.Source)
	assert.Same(t, res, r.Result)
	assert.True(t, r.GeneratedAt.After(before))
	assert.Len(t, r.ShortID(), 8)
	assert.NotEqual(t, r.ID, NewReport(TextSource, "", res).ID)
}

func TestShortID_Short(t *testing.T) {
	assert.Equal(t, "abc", Report{ID: "abc"}.ShortID())
}
