package parser

import (
	"testing"

	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLyricLine(t *testing.T) {
	cases := []struct {
		input    string
		expected []model.LyricToken
	}{
		{"", []model.LyricToken{}},
		{"no markers here", []model.LyricToken{{Text: "no markers here"}}},
		{"_Put me _on top", []model.LyricToken{
			{Text: "Put me ", IsPositioned: true},
			{Text: "on top", IsPositioned: true},
		}},
		{"The first _chord comes _later", []model.LyricToken{
			{Text: "The first "},
			{Text: "chord comes ", IsPositioned: true},
			{Text: "later", IsPositioned: true},
		}},
		{"_ _me__", []model.LyricToken{
			{Text: " ", IsPositioned: true},
			{Text: "me", IsPositioned: true},
			{Text: "", IsPositioned: true},
			{Text: "", IsPositioned: true},
		}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			parsed, err := ParseLyricLine(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, parsed.Tokens)
		})
	}
}

func TestParseLyricLineCustomMarker(t *testing.T) {
	g := grammar.Default()
	g.PositionMarker = '^'

	parsed, err := ParseLyricLine("la ^la_la", WithGrammar(g))
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.PositionCount())
	assert.Equal(t, "la la_la", parsed.Lyrics())
}
