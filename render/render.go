// Package render prints spaced chord and lyric lines as plain text.
package render

import (
	"strings"

	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/spacer"
)

const barSeparator = "|"

// ChordLine prints a spaced chord line, bar separators included when
// requested. The line is shifted right by its offset.
func ChordLine(line model.ChordLine, opts spacer.Options) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", line.Offset))

	lastBar := len(line.AllBars) - 1
	for i, bar := range line.AllBars {
		if opts.PrintBarSeparators {
			sb.WriteString(barSeparator)
		}
		sb.WriteString(BarContent(bar, i == lastBar, opts))
	}
	if opts.PrintBarSeparators && len(line.AllBars) > 0 {
		sb.WriteString(barSeparator)
	}
	return sb.String()
}

// BarContent prints the chords of a bar with their spacing. Without bar
// separators, nothing is printed after the last chord of the line.
func BarContent(bar model.Bar, isLastBar bool, opts spacer.Options) string {
	var sb strings.Builder
	lastChord := len(bar.AllChords) - 1
	for i, c := range bar.AllChords {
		sb.WriteString(spacer.ChordText(c, opts))
		if isLastBar && i == lastChord && !opts.PrintBarSeparators {
			break
		}
		sb.WriteString(strings.Repeat(" ", c.SpacesWithin))
		sb.WriteString(strings.Repeat(" ", c.SpacesAfter))
	}
	return sb.String()
}

// LyricLine prints the lyrics with their padding, without trailing spaces.
func LyricLine(line model.LyricLine) string {
	return strings.TrimRight(line.Lyrics(), " ")
}
