package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Marker is a chord symbol placed at an absolute tick.
type Marker struct {
	Tick uint64
	Text string
}

// Markers lays the chords of lines end to end, bar after bar, and returns
// one marker per chord. Members of a sub-beat group split their beat evenly.
func Markers(lines []model.ChordLine) []Marker {
	var markers []Marker
	walk(lines, func(bar model.Bar, start uint64) {
		markers = append(markers, barMarkers(bar, start)...)
	})
	return markers
}

// walk calls fn for every bar of lines with the tick the bar starts at, and
// returns the tick the last bar ends at.
func walk(lines []model.ChordLine, fn func(bar model.Bar, start uint64)) uint64 {
	var start uint64
	for _, line := range lines {
		for _, bar := range line.AllBars {
			fn(bar, start)
			start += uint64(bar.TimeSignature.BeatCount) * beatTicks(bar)
		}
	}
	return start
}

func beatTicks(bar model.Bar) uint64 {
	return uint64(bar.TimeSignature.BeatTicks(constants.MidiTicksPerQuarter))
}

func barMarkers(bar model.Bar, start uint64) []Marker {
	markers := make([]Marker, 0, len(bar.AllChords))
	beat := beatTicks(bar)

	groupSize, groupIndex := 0, 0
	for i, c := range bar.AllChords {
		tick := start + uint64(c.Beat-1)*beat
		if c.IsInSubBeatGroup {
			if c.IsFirstOfSubBeat {
				groupSize, groupIndex = subBeatGroupSize(bar.AllChords[i:]), 0
			}
			tick += uint64(groupIndex) * beat / uint64(groupSize)
			groupIndex++
		}
		markers = append(markers, Marker{Tick: tick, Text: markerText(c)})
	}
	return markers
}

func subBeatGroupSize(chords []model.Chord) int {
	for i, c := range chords {
		if c.IsLastOfSubBeat {
			return i + 1
		}
	}
	return len(chords)
}

func markerText(c model.Chord) string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.Token
}

// WriteChordMarkers writes a single track SMF holding the meter and tempo of
// lines and a marker meta event at the start of every chord. No note is
// written.
func WriteChordMarkers(w io.Writer, lines []model.ChordLine, bpm float64) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.MidiTicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	var last uint64
	var meter model.TimeSignature
	end := walk(lines, func(bar model.Bar, start uint64) {
		if bar.TimeSignature != meter {
			meter = bar.TimeSignature
			tr.Add(uint32(start-last), smf.MetaMeter(uint8(meter.Count), uint8(meter.Unit)))
			last = start
		}
		for _, m := range barMarkers(bar, start) {
			tr.Add(uint32(m.Tick-last), smf.MetaMarker(m.Text))
			last = m.Tick
		}
	})
	tr.Close(uint32(end - last))

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

// ReadChordMarkers returns the marker meta events of every track, with
// absolute ticks.
func ReadChordMarkers(r io.Reader) (markers []Marker, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec, ok := recover().(string); ok {
			e = errors.New(rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}

	for _, track := range s.Tracks {
		var absTicks uint64
		for _, ev := range track {
			absTicks += uint64(ev.Delta)
			var text string
			if ev.Message.GetMetaMarker(&text) {
				markers = append(markers, Marker{Tick: absTicks, Text: text})
			}
		}
	}
	return markers, nil
}

func ReadChordMarkersFile(filepath string) ([]Marker, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return ReadChordMarkers(bytes.NewReader(dat))
}
