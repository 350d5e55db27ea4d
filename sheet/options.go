package sheet

import (
	"fmt"

	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/parser"
	"github.com/jsphweid/chordmark/spacer"
)

// Display selects which lines of a sheet get rendered.
type Display string

const (
	DisplayAll    Display = "all"
	DisplayChords Display = "chords"
	DisplayLyrics Display = "lyrics"
)

func ParseDisplay(s string) (Display, error) {
	switch d := Display(s); d {
	case DisplayAll, DisplayChords, DisplayLyrics:
		return d, nil
	case "":
		return DisplayAll, nil
	}
	return "", fmt.Errorf("unknown display %q, expected all, chords or lyrics", s)
}

type Options struct {
	// TimeSignature applies until a time signature line changes it.
	TimeSignature model.TimeSignature
	Grammar       grammar.Grammar

	AlignBars             bool
	AlignChordsWithLyrics bool
	PrintChordsDuration   bool
	PrintBarSeparators    bool
	Display               Display
}

func DefaultOptions() Options {
	return Options{
		TimeSignature:      model.DefaultTimeSignature,
		Grammar:            grammar.Default(),
		PrintBarSeparators: true,
		Display:            DisplayAll,
	}
}

func (o Options) withDefaults() Options {
	if o.TimeSignature == (model.TimeSignature{}) {
		o.TimeSignature = model.DefaultTimeSignature
	}
	if o.Grammar == (grammar.Grammar{}) {
		o.Grammar = grammar.Default()
	}
	if o.Display == "" {
		o.Display = DisplayAll
	}
	return o
}

func (o Options) spacing() spacer.Options {
	return spacer.Options{
		PrintChordsDuration: o.PrintChordsDuration,
		PrintBarSeparators:  o.PrintBarSeparators,
		Grammar:             o.Grammar,
	}
}

func (o Options) parserOptions(ts model.TimeSignature) []parser.Option {
	return []parser.Option{
		parser.WithTimeSignature(ts),
		parser.WithGrammar(o.Grammar),
	}
}
