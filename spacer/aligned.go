package spacer

import (
	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/util"
)

// Aligned spaces line so that every beat takes the width recorded for it in
// widths, which makes the beats of several lines start on the same column.
// widths is normally the result of MaxBeatsWidth over all the lines to align.
func Aligned(line model.ChordLine, widths model.BeatWidths, opts Options) model.ChordLine {
	opts = opts.withDefaults()

	spaced := line.Clone()
	lastBar := len(spaced.AllBars) - 1
	for barIndex := range spaced.AllBars {
		bar := &spaced.AllBars[barIndex]
		beatCount := bar.TimeSignature.BeatCount

		// the closing separator follows the last beat of the line directly
		gap := func(beat int) int {
			if barIndex == lastBar && beat == beatCount && opts.PrintBarSeparators {
				return 0
			}
			return constants.DefaultSpacesAfter
		}

		slots := slotsOf(*bar)
		for i, s := range slots {
			next := beatCount + 1
			if i+1 < len(slots) {
				next = slots[i+1].beat
			}

			for j := s.first; j < s.last; j++ {
				bar.AllChords[j].SpacesWithin = 0
				bar.AllChords[j].SpacesAfter = constants.SubBeatSpaces
			}

			after := gap(s.beat)
			for beat := s.beat + 1; beat < next; beat++ {
				if w := widths.Get(barIndex, beat); w > 0 {
					after += w + gap(beat)
				} else {
					after += constants.EmptyBeatSpaces
				}
			}

			last := &bar.AllChords[s.last]
			last.SpacesWithin = util.Max(0, widths.Get(barIndex, s.beat)-s.width(*bar, opts))
			last.SpacesAfter = after
		}
	}
	return spaced
}
