package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSignature is a meter as written (Count/Unit) and the number of beats
// a bar of that meter holds. Compound meters (6/8, 9/8, 12/8...) count one
// beat per three written units.
type TimeSignature struct {
	Count     int `json:"count"`
	Unit      int `json:"unit"`
	BeatCount int `json:"beatCount"`
	BeatUnit  int `json:"beatUnit"`
}

var DefaultTimeSignature = TimeSignature{Count: 4, Unit: 4, BeatCount: 4, BeatUnit: 4}

// ParseTimeSignature parses strings such as "3/4" or "6/8".
func ParseTimeSignature(s string) (TimeSignature, error) {
	count, unit, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return TimeSignature{}, fmt.Errorf("invalid time signature %q", s)
	}
	c, err := strconv.Atoi(count)
	if err != nil || c < 1 || c > 16 {
		return TimeSignature{}, fmt.Errorf("invalid beat count in time signature %q", s)
	}
	u, err := strconv.Atoi(unit)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("invalid beat unit in time signature %q", s)
	}
	switch u {
	case 1, 2, 4, 8, 16:
	default:
		return TimeSignature{}, fmt.Errorf("invalid beat unit in time signature %q", s)
	}

	ts := TimeSignature{Count: c, Unit: u, BeatCount: c, BeatUnit: u}
	if u >= 8 && c%3 == 0 {
		ts.BeatCount = c / 3
	}
	return ts, nil
}

// IsCompound reports whether a beat spans three written units.
func (ts TimeSignature) IsCompound() bool {
	return ts.BeatCount != ts.Count
}

// BeatTicks is the length of one beat given ppq ticks per quarter note.
func (ts TimeSignature) BeatTicks(ppq int) int {
	ticks := ppq * 4 / ts.Unit
	if ts.IsCompound() {
		ticks *= 3
	}
	return ticks
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Count, ts.Unit)
}
