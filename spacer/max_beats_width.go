package spacer

import "github.com/jsphweid/chordmark/model"

// MaxBeatsWidth returns, for every (bar index, beat) of the given lines, the
// width of the widest chord starting there. Beats where no chord starts are
// recorded with a width of 0.
func MaxBeatsWidth(lines []model.ChordLine, opts Options) model.BeatWidths {
	opts = opts.withDefaults()

	widths := model.BeatWidths{}
	for _, line := range lines {
		for barIndex, bar := range line.AllBars {
			for beat := 1; beat <= bar.TimeSignature.BeatCount; beat++ {
				widths.Set(barIndex, beat, 0)
			}
			for _, s := range slotsOf(bar) {
				widths.Set(barIndex, s.beat, s.width(bar, opts))
			}
		}
	}
	return widths
}
