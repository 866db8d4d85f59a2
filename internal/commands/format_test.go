package commands

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "longer ...", truncate("longer than ten", 10))

	// accented names are cut between runes, never inside one
	got := truncate("Conceição dos Santos Oliveira", 12)
	assert.Equal(t, "Conceição...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = parseID("abc")
	assert.Error(t, err)
	_, err = parseID("-1")
	assert.Error(t, err)
}
