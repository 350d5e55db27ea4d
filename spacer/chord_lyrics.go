package spacer

import (
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/model"
)

type boundChord struct {
	chord        *model.Chord
	isFirstOfBar bool
}

// ChordLyrics binds the chords of line, in order, to the position markers of
// lyrics and spaces both lines so that each chord is printed above the lyric
// it is bound to. Lyrics that are too short for their chord get padded.
// Chords left without a marker are separated by a single space.
//
// Without any position marker, chords keep the default gap and lyrics are
// returned as they are.
func ChordLyrics(line model.ChordLine, lyrics model.LyricLine, opts Options) (model.ChordLine, model.LyricLine) {
	opts = opts.withDefaults()

	spacedChords := line.Clone()
	spacedLyrics := lyrics.Clone()

	var chords []boundChord
	for barIndex := range spacedChords.AllBars {
		bar := &spacedChords.AllBars[barIndex]
		for i := range bar.AllChords {
			bar.AllChords[i].SpacesWithin = 0
			chords = append(chords, boundChord{chord: &bar.AllChords[i], isFirstOfBar: i == 0})
		}
	}

	if lyrics.PositionCount() == 0 {
		for _, b := range chords {
			b.chord.SpacesAfter = constants.DefaultSpacesAfter
		}
		return spacedChords, spacedLyrics
	}
	spacedChords.HasPositionedChords = true

	next := 0
	lastToken := len(spacedLyrics.Tokens) - 1
	for i := range spacedLyrics.Tokens {
		token := &spacedLyrics.Tokens[i]
		if !token.IsPositioned {
			if i == 0 {
				spacedChords.Offset = utf8.RuneCountInString(token.Text)
			}
			continue
		}
		if next == len(chords) {
			break
		}
		bound := chords[next]
		next++

		printed := chordWidth(*bound.chord, opts)
		if bound.isFirstOfBar && opts.PrintBarSeparators {
			printed++
		}
		textWidth := utf8.RuneCountInString(token.Text)

		// a marker followed by a space puts the chord before the lyric
		if strings.HasPrefix(token.Text, " ") {
			token.PaddingBefore = printed
			bound.chord.SpacesAfter = textWidth
			continue
		}

		if textWidth-printed >= constants.LyricsSpacesAfter {
			bound.chord.SpacesAfter = textWidth - printed
			continue
		}
		bound.chord.SpacesAfter = constants.LyricsSpacesAfter
		if i != lastToken {
			token.PaddingAfter = printed + constants.LyricsSpacesAfter - textWidth
		}
	}

	for ; next < len(chords); next++ {
		chords[next].chord.SpacesAfter = constants.LyricsSpacesAfter
	}
	return spacedChords, spacedLyrics
}
