package parser

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordmark/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input    string
		expected []token
	}{
		{"", nil},
		{"   ", nil},
		{"C.. G..", []token{{"C..", 0}, {"G..", 4}}},
		{"  C..\t\tG..  ", []token{{"C..", 2}, {"G..", 7}}},
		{"C(add b9) F(add #9)", []token{{"C(addb9)", 0}, {"F(add#9)", 10}}},
		{"[Am F] Gø7..", []token{{"[Am", 0}, {"F]", 4}, {"Gø7..", 7}}},
		{"C % %%", []token{{"C", 0}, {"%", 2}, {"%%", 4}}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			tokens, err := tokenize(c.input, grammar.Default())
			require.NoError(t, err)
			assert.Equal(t, c.expected, tokens)
		})
	}
}

func TestTokenizeCustomGrammar(t *testing.T) {
	g := grammar.Default()
	g.BarRepeat = '/'

	_, err := tokenize("/ C", g)
	assert.ErrorIs(t, err, ErrNoBarToRepeat)

	tokens, err := tokenize("% C", g)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestParseChordLineCustomGrammar(t *testing.T) {
	g := grammar.Default()
	g.DurationMarker = '\''
	g.NoChord = "N.C."

	parsed, err := ParseChordLine("C'' N.C.''", WithGrammar(g))
	require.NoError(t, err)

	chords := parsed.AllBars[0].AllChords
	require.Len(t, chords, 2)
	assert.Equal(t, 2.0, chords[0].Duration)
	assert.True(t, chords[1].Model.IsNoChord)
}

func TestCollidingGrammarIsRejected(t *testing.T) {
	g := grammar.Default()
	g.SubBeatCloser = '.'

	_, err := ParseChordLine("C.. G..", WithGrammar(g))
	assert.ErrorIs(t, err, ErrInvalidGrammar)
	assert.Contains(t, err.Error(), "share the symbol")

	var groupErr *InvalidSubBeatGroupError
	assert.False(t, errors.As(err, &groupErr))

	_, err = ParseLyricLine("_la la", WithGrammar(g))
	assert.ErrorIs(t, err, ErrInvalidGrammar)

	assert.False(t, IsChordLine("C.. G..", WithGrammar(g)))
}

func TestIsChordLine(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{"C.. G.. % [Am F] NC...", true},
		{"Am7 %%", true},
		{"C(add b9) F(add #9)", true},
		{"A. A...", true},
		{"", false},
		{"   ", false},
		{"_Put me _on top", false},
		{"A lyric line", false},
		{"I do not know", false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, IsChordLine(c.input))
		})
	}
}
