package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBar() Bar {
	return Bar{
		AllChords: []Chord{
			{Token: "C..", Model: ChordModel{Def: ChordDef{Root: "C"}}, Duration: 2, Beat: 1},
			{Token: "G..", Model: ChordModel{Def: ChordDef{Root: "G"}}, Duration: 2, Beat: 3},
		},
		TimeSignature: DefaultTimeSignature,
	}
}

func TestBarCloneDoesNotAlias(t *testing.T) {
	bar := sampleBar()
	clone := bar.Clone()
	clone.AllChords[0].SpacesAfter = 4

	assert.Equal(t, 0, bar.AllChords[0].SpacesAfter)
}

func TestBarEqualIgnoresIsRepeated(t *testing.T) {
	bar := sampleBar()
	repeated := bar.Clone()
	repeated.IsRepeated = true
	assert.True(t, bar.Equal(repeated))

	repeated.AllChords[1].Model = NoChord
	assert.False(t, bar.Equal(repeated))
}

func TestBarBeatCountCountsSubBeatGroupOnce(t *testing.T) {
	bar := Bar{AllChords: []Chord{
		{Duration: 3, Beat: 1},
		{Duration: 0.33, Beat: 4, IsInSubBeatGroup: true, IsFirstOfSubBeat: true},
		{Duration: 0.33, Beat: 4, IsInSubBeatGroup: true},
		{Duration: 0.33, Beat: 4, IsInSubBeatGroup: true, IsLastOfSubBeat: true},
	}}
	assert.Equal(t, 4.0, bar.BeatCount())
}

func TestChordLineMapChordsReturnsNewTree(t *testing.T) {
	line := ChordLine{AllBars: []Bar{sampleBar(), sampleBar()}}
	mapped := line.MapChords(func(c Chord) Chord {
		c.Symbol = c.Model.Def.Root
		return c
	})

	assert.Equal(t, 4, mapped.ChordCount())
	assert.Equal(t, "G", mapped.AllBars[1].AllChords[1].Symbol)
	assert.Empty(t, line.AllBars[1].AllChords[1].Symbol)
}

func TestParseTimeSignature(t *testing.T) {
	ts, err := ParseTimeSignature("3/4")
	require.NoError(t, err)
	assert.Equal(t, TimeSignature{Count: 3, Unit: 4, BeatCount: 3, BeatUnit: 4}, ts)
	assert.Equal(t, "3/4", ts.String())
	assert.Equal(t, 960, ts.BeatTicks(960))

	ts, err = ParseTimeSignature(" 6/8 ")
	require.NoError(t, err)
	assert.Equal(t, 2, ts.BeatCount)
	assert.True(t, ts.IsCompound())
	assert.Equal(t, "6/8", ts.String())
	assert.Equal(t, 1440, ts.BeatTicks(960))

	ts, err = ParseTimeSignature("3/8")
	require.NoError(t, err)
	assert.Equal(t, 1, ts.BeatCount)

	ts, err = ParseTimeSignature("5/8")
	require.NoError(t, err)
	assert.Equal(t, 5, ts.BeatCount)
	assert.Equal(t, 480, ts.BeatTicks(960))

	for _, invalid := range []string{"", "4", "0/4", "4/3", "a/4", "4/b", "17/4"} {
		_, err := ParseTimeSignature(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestLyricLineLyricsAppliesPadding(t *testing.T) {
	line := LyricLine{Tokens: []LyricToken{
		{Text: "Put ", IsPositioned: true, PaddingAfter: 2},
		{Text: " me", IsPositioned: true, PaddingBefore: 3},
	}}
	assert.Equal(t, "Put"+strings.Repeat(" ", 7)+"me", line.Lyrics())
	assert.Equal(t, 2, line.PositionCount())

	clone := line.Clone()
	clone.Tokens[0].PaddingAfter = 0
	assert.Equal(t, 2, line.Tokens[0].PaddingAfter)
}

func TestBeatWidthsKeepsMaximum(t *testing.T) {
	w := BeatWidths{}
	w.Set(0, 1, 3)
	w.Set(0, 1, 2)
	w.Set(0, 2, 0)

	assert.Equal(t, 3, w.Get(0, 1))
	assert.Equal(t, 0, w.Get(0, 2))
	assert.Equal(t, 0, w.Get(5, 5))
	assert.Len(t, w, 2)
}
