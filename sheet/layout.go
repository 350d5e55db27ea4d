package sheet

import (
	"github.com/jsphweid/chordmark/chord"
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/spacer"
)

// Layout returns a copy of s where chords carry their symbols and every
// chord line, and the lyric line bound to it, is spaced. Beat widths are
// measured across all chord lines before any line gets aligned.
func Layout(s *Sheet, opts Options) *Sheet {
	opts = opts.withDefaults()
	spacing := opts.spacing()

	laidOut := s.Clone()
	for i := range laidOut.Lines {
		if chords := laidOut.Lines[i].Chords; chords != nil {
			withSymbols := chord.AssignSymbols(*chords, opts.Grammar)
			laidOut.Lines[i].Chords = &withSymbols
		}
	}

	var widths model.BeatWidths
	if opts.AlignBars {
		widths = spacer.MaxBeatsWidth(laidOut.ChordLines(), spacing)
	}

	for i := range laidOut.Lines {
		line := &laidOut.Lines[i]
		if line.Chords == nil {
			continue
		}

		spaced := spacer.Simple(*line.Chords, spacing)
		if opts.AlignBars {
			spaced = spacer.Aligned(*line.Chords, widths, spacing)
		}

		if partner := lyricPartner(laidOut, i); opts.AlignChordsWithLyrics && partner != nil && partner.Lyrics.PositionCount() > 0 {
			chords, lyrics := spacer.ChordLyrics(spaced, *partner.Lyrics, spacing)
			spaced = chords
			partner.Lyrics = &lyrics
		}
		line.Chords = &spaced
	}
	return laidOut
}

// lyricPartner returns the lyric line written right under the chord line at
// index i, if any.
func lyricPartner(s *Sheet, i int) *Line {
	if i+1 >= len(s.Lines) || s.Lines[i+1].Type != LyricLine {
		return nil
	}
	return &s.Lines[i+1]
}
