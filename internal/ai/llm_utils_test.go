package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification_AcceptsFencedJSON(t *testing.T) {
	docs, err := parseClassification("```json\n[{\"description\": \"Birth certificate\", \"tab\": \"A\"}]\n```")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Birth certificate", docs[0].Description)
	assert.Equal(t, "A", docs[0].TabLabel)
}

func TestParseClassification_RejectsWrongShape(t *testing.T) {
	_, err := parseClassification(`[{"description": "x"}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")

	_, err = parseClassification(`{"description": "x", "tab": "A"}`)
	require.Error(t, err)
}

func TestParseVerdict(t *testing.T) {
	ok, missing, err := parseVerdict(`{"has_minimum": false, "missing": ["Police report"]}`)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Police report"}, missing)

	_, _, err = parseVerdict("the packet looks fine to me")
	require.Error(t, err)
}
