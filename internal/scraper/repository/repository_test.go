package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFactList(t *testing.T) {
	facts, err := ParseFactList(`["A quake struck.", "No casualties."]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A quake struck.", "No casualties."}, facts)
}

func TestParseFactList_StripsSurroundingProse(t *testing.T) {
	response := "Here are the extracted facts:\n```json\n[\"One.\", \"Two.\"]\n```\nLet me know if you need more."
	facts, err := ParseFactList(response)
	require.NoError(t, err)
	assert.Equal(t, []string{"One.", "Two."}, facts)
}

func TestParseFactList_NoArrayFailsClosed(t *testing.T) {
	_, err := ParseFactList("I could not find any facts in this text.")
	assert.Error(t, err)
}

func TestParseFactList_InvalidJSONFailsClosed(t *testing.T) {
	_, err := ParseFactList(`["unterminated`)
	assert.Error(t, err)

	_, err = ParseFactList(`[1, 2, 3]`)
	assert.Error(t, err)
}

func TestParseFactList_EmptyArray(t *testing.T) {
	facts, err := ParseFactList("The text asserts nothing: []")
	require.NoError(t, err)
	assert.Empty(t, facts)
}
