package model

type BeatSlot struct {
	Bar  int
	Beat int
}

// BeatWidths maps a (bar index, beat) slot to the widest chord printed there.
type BeatWidths map[BeatSlot]int

func (w BeatWidths) Get(bar, beat int) int {
	return w[BeatSlot{Bar: bar, Beat: beat}]
}

// Set records width for the slot if it is wider than what is stored.
func (w BeatWidths) Set(bar, beat, width int) {
	slot := BeatSlot{Bar: bar, Beat: beat}
	if current, ok := w[slot]; !ok || width > current {
		w[slot] = width
	}
}
