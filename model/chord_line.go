package model

type Bar struct {
	AllChords                []Chord       `json:"allChords"`
	TimeSignature            TimeSignature `json:"timeSignature"`
	IsRepeated               bool          `json:"isRepeated"`
	HasUnevenChordsDurations bool          `json:"hasUnevenChordsDurations"`
}

type ChordLine struct {
	AllBars             []Bar `json:"allBars"`
	HasPositionedChords bool  `json:"hasPositionedChords"`
	// Offset is the number of columns before the first chord when the line
	// is aligned on lyrics that do not start with a chord.
	Offset int `json:"offset,omitempty"`
}

// Clone returns a copy of the bar that shares no memory with b.
func (b Bar) Clone() Bar {
	clone := b
	if b.AllChords != nil {
		clone.AllChords = make([]Chord, len(b.AllChords))
		copy(clone.AllChords, b.AllChords)
	}
	return clone
}

// Equal compares two bars deeply, ignoring IsRepeated.
func (b Bar) Equal(other Bar) bool {
	if b.TimeSignature != other.TimeSignature ||
		b.HasUnevenChordsDurations != other.HasUnevenChordsDurations ||
		len(b.AllChords) != len(other.AllChords) {
		return false
	}
	for i := range b.AllChords {
		if b.AllChords[i] != other.AllChords[i] {
			return false
		}
	}
	return true
}

// BeatCount is the sum of the bar's chord durations, counting each sub-beat
// group as exactly one beat.
func (b Bar) BeatCount() float64 {
	var total float64
	for _, c := range b.AllChords {
		if c.IsInSubBeatGroup {
			if c.IsFirstOfSubBeat {
				total++
			}
			continue
		}
		total += c.Duration
	}
	return total
}

func (l ChordLine) Clone() ChordLine {
	clone := l
	if l.AllBars != nil {
		clone.AllBars = make([]Bar, len(l.AllBars))
		for i, bar := range l.AllBars {
			clone.AllBars[i] = bar.Clone()
		}
	}
	return clone
}

// ChordCount returns the number of chords across all bars.
func (l ChordLine) ChordCount() int {
	count := 0
	for _, bar := range l.AllBars {
		count += len(bar.AllChords)
	}
	return count
}

// MapChords returns a copy of the line with fn applied to every chord.
func (l ChordLine) MapChords(fn func(c Chord) Chord) ChordLine {
	clone := l.Clone()
	for i := range clone.AllBars {
		for j := range clone.AllBars[i].AllChords {
			clone.AllBars[i].AllChords[j] = fn(clone.AllBars[i].AllChords[j])
		}
	}
	return clone
}
