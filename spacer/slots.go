package spacer

import (
	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/model"
)

// slot is a chord start within a bar: a single chord, or all the members of
// a sub-beat group. first and last index into the bar's chords.
type slot struct {
	beat  int
	first int
	last  int
}

func slotsOf(bar model.Bar) []slot {
	var slots []slot
	for i, c := range bar.AllChords {
		if n := len(slots); n > 0 && c.IsInSubBeatGroup && slots[n-1].beat == c.Beat {
			slots[n-1].last = i
			continue
		}
		slots = append(slots, slot{beat: c.Beat, first: i, last: i})
	}
	return slots
}

// width of the slot once printed, including the spaces between the members
// of a sub-beat group.
func (s slot) width(bar model.Bar, opts Options) int {
	width := 0
	for i := s.first; i <= s.last; i++ {
		width += chordWidth(bar.AllChords[i], opts)
	}
	return width + (s.last-s.first)*constants.SubBeatSpaces
}
