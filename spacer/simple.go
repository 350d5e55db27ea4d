package spacer

import (
	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/model"
)

// Simple separates chords with a fixed gap, regardless of their durations.
func Simple(line model.ChordLine, opts Options) model.ChordLine {
	opts = opts.withDefaults()

	spaced := line.Clone()
	lastBar := len(spaced.AllBars) - 1
	for barIndex := range spaced.AllBars {
		chords := spaced.AllBars[barIndex].AllChords
		for i := range chords {
			chords[i].SpacesWithin = 0
			chords[i].SpacesAfter = constants.DefaultSpacesAfter
			if chords[i].IsInSubBeatGroup && !chords[i].IsLastOfSubBeat {
				chords[i].SpacesAfter = constants.SubBeatSpaces
			}
		}
		if barIndex == lastBar && !opts.PrintBarSeparators && len(chords) > 0 {
			chords[len(chords)-1].SpacesAfter = 0
		}
	}
	return spaced
}
