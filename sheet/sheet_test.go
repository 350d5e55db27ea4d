package sheet

import (
	"context"
	"strings"
	"testing"

	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const song = `C.. G.. Am
_Put me _on top
3/4
D E. F#m..

lyrics without chords`

func TestParse(t *testing.T) {
	s, err := Parse(context.Background(), song, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, s.Lines, 6)

	types := make([]LineType, len(s.Lines))
	for i, line := range s.Lines {
		types[i] = line.Type
	}
	assert.Equal(t, []LineType{ChordLine, LyricLine, TimeSignatureLine, ChordLine, EmptyLine, LyricLine}, types)

	first := s.Lines[0]
	assert.Equal(t, 1, first.Number)
	require.NotNil(t, first.Chords)
	assert.Len(t, first.Chords.AllBars, 2)
	assert.Equal(t, model.DefaultTimeSignature, first.TimeSignature)

	waltz := s.Lines[3]
	require.NotNil(t, waltz.Chords)
	assert.Equal(t, 3, waltz.TimeSignature.BeatCount)
	assert.Equal(t, 3, waltz.Chords.AllBars[1].TimeSignature.BeatCount)

	assert.Equal(t, 2, s.Lines[1].Lyrics.PositionCount())
	assert.Len(t, s.ChordLines(), 2)
}

func TestParseWindowsLineEndings(t *testing.T) {
	s, err := Parse(context.Background(), "C G\r\nla la\r\n", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "C G", s.Lines[0].Text)
	assert.Equal(t, ChordLine, s.Lines[0].Type)
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(context.Background(), "C G\n\nC.. G.\nA", DefaultOptions())

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Number)
	assert.Equal(t, "C.. G.", lineErr.Text)

	var beatErr *parser.IncorrectBeatCountError
	require.ErrorAs(t, err, &beatErr)
	assert.Equal(t, "G.", beatErr.Token)
}

func TestParseRejectsCollidingGrammar(t *testing.T) {
	opts := DefaultOptions()
	opts.Grammar.PositionMarker = opts.Grammar.BarRepeat

	_, err := Parse(context.Background(), "C.. G..\n_la la", opts)
	assert.ErrorIs(t, err, parser.ErrInvalidGrammar)
}

func TestLayoutDoesNotModifyInput(t *testing.T) {
	s, err := Parse(context.Background(), song, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.AlignChordsWithLyrics = true
	laidOut := Layout(s, opts)

	assert.NotEmpty(t, laidOut.Lines[0].Chords.AllBars[0].AllChords[0].Symbol)
	assert.Empty(t, s.Lines[0].Chords.AllBars[0].AllChords[0].Symbol)
	assert.Zero(t, s.Lines[1].Lyrics.Tokens[0].PaddingAfter)
	assert.True(t, laidOut.Lines[0].Chords.HasPositionedChords)
}

func TestRenderText(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		modify   func(o *Options)
		expected string
	}{
		{
			"simple",
			"A D A E\n_Put me _on top _of the correct _lyrics",
			func(o *Options) {},
			"|A  |D  |A  |E  |\nPut me on top of the correct lyrics",
		},
		{
			"chords aligned with lyrics",
			"A D A E\n_Put me _on top _of the correct _lyrics",
			func(o *Options) { o.AlignChordsWithLyrics = true },
			"|A     |D     |A             |E    |\nPut me on top of the correct lyrics",
		},
		{
			"aligned bars",
			"A.. D7.. Em\nDmi7. E. F#m7(b5).. C",
			func(o *Options) { o.AlignBars = true },
			"|A        D7          |Emi     |\n|Dmi7  E  F#mi7(b5)   |C       |",
		},
		{
			"chords only",
			"A D\n_la _la\n\nE",
			func(o *Options) { o.Display = DisplayChords },
			"|A  |D  |\n\n|E  |",
		},
		{
			"lyrics only",
			"A D\n_la _la",
			func(o *Options) { o.Display = DisplayLyrics },
			"la la",
		},
		{
			"time signature change",
			"6/8\nC G..",
			func(o *Options) { o.PrintBarSeparators = false },
			"6/8\nC  G",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			c.modify(&opts)

			rendered, err := RenderText(context.Background(), c.text, opts)
			require.NoError(t, err)
			assert.Equal(t, c.expected, rendered)
		})
	}
}

func TestParseDisplay(t *testing.T) {
	d, err := ParseDisplay("")
	require.NoError(t, err)
	assert.Equal(t, DisplayAll, d)

	d, err = ParseDisplay("chords")
	require.NoError(t, err)
	assert.Equal(t, DisplayChords, d)

	_, err = ParseDisplay("nothing")
	assert.True(t, strings.Contains(err.Error(), "nothing"))
}
