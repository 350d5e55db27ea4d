// Package spacer computes the horizontal spacing of chord lines.
//
// Three strategies are available: Simple puts a fixed gap after every chord,
// Aligned pads chords so that the same beat lines up across lines, and
// ChordLyrics places chords above the lyric positions they are bound to.
// Spacers return new trees and never fail.
package spacer

import (
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
)

type Options struct {
	PrintChordsDuration bool
	PrintBarSeparators  bool
	Grammar             grammar.Grammar
}

func DefaultOptions() Options {
	return Options{
		PrintBarSeparators: true,
		Grammar:            grammar.Default(),
	}
}

func (o Options) withDefaults() Options {
	if o.Grammar == (grammar.Grammar{}) {
		o.Grammar = grammar.Default()
	}
	return o
}

// ChordText is what gets printed for c: its symbol, or the bare token when
// no symbol was assigned, followed by its duration markers if requested.
func ChordText(c model.Chord, opts Options) string {
	opts = opts.withDefaults()
	g := opts.Grammar

	text := c.Symbol
	if text == "" {
		text = g.Clean(c.Token)
	}
	if opts.PrintChordsDuration {
		text += strings.Repeat(string(g.DurationMarker), g.DurationMarkers(c.Token))
	}
	return text
}

func chordWidth(c model.Chord, opts Options) int {
	return utf8.RuneCountInString(ChordText(c, opts))
}
