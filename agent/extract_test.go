package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidateCleanJSON(t *testing.T) {
	c := ExtractCandidate(`{"intent":"inventory","metric":"available","time_range_days":30}`)
	require.NotNil(t, c.Intent)
	assert.Equal(t, "inventory", *c.Intent)
	require.NotNil(t, c.Metric)
	assert.Equal(t, "available", *c.Metric)
	require.NotNil(t, c.TimeRangeDays)
	assert.Equal(t, 30, *c.TimeRangeDays)
}

func TestExtractCandidateJSONWrappedInProse(t *testing.T) {
	raw := "Sure! Here is the plan you asked for:\n```json\n" +
		`{"intent":"sales","metric":"quantity","time_range_days":7}` +
		"\n```\nLet me know if you need anything else."
	c := ExtractCandidate(raw)
	require.NotNil(t, c.Intent)
	assert.Equal(t, "sales", *c.Intent)
}

func TestExtractCandidateNoBraces(t *testing.T) {
	c := ExtractCandidate("Sure! Here's the answer: the weather is nice")
	assert.Nil(t, c.Intent)
	assert.Nil(t, c.Metric)
	assert.Nil(t, c.TimeRangeDays)
}

func TestExtractCandidateTotality(t *testing.T) {
	inputs := []string{
		"",
		"}{",
		"{",
		"}",
		"{not json}",
		"{{{{",
		"prose { \"intent\": } prose",
		string([]byte{0x00, 0xff, 0x7b, 0x01}),
	}
	for _, in := range inputs {
		c := ExtractCandidate(in)
		assert.Nil(t, c.Intent, "input %q", in)
		assert.Nil(t, c.Metric, "input %q", in)
		assert.Nil(t, c.TimeRangeDays, "input %q", in)
	}
}

func TestExtractCandidateWidestSpan(t *testing.T) {
	// Two objects in one response: the widest span is not valid JSON, so
	// extraction falls back to an empty candidate rather than guessing.
	c := ExtractCandidate(`{"intent":"sales"} and also {"intent":"customers"}`)
	assert.Nil(t, c.Intent)
}
