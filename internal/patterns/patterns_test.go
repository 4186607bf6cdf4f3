package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitsCountsPatternsNotOccurrences(t *testing.T) {
	set := MustSet(`\bled\b`, `\barchitected\b`)
	assert.Equal(t, 1, set.Hits("led the team, led the migration"))
	assert.Equal(t, 2, set.Hits("led and architected the platform"))
	assert.Equal(t, 0, set.Hits("assisted with tickets"))
}

func TestMatchesReturnsFirstMatchPerPattern(t *testing.T) {
	set := MustSet(`\bliderou\b`, `\bmentor(ed|ou)?\b`)
	got := set.Matches("liderou o time e mentorou juniores")
	assert.Equal(t, []string{"liderou", "mentorou"}, got)
}

func TestAny(t *testing.T) {
	set := MustSet(`\broadmap\b`)
	assert.True(t, set.Any("owned the product roadmap"))
	assert.False(t, set.Any("owned the backlog"))
}
