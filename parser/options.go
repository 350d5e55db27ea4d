package parser

import (
	"fmt"

	"github.com/jsphweid/chordmark/chord"
	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
)

// ChordParser turns the bare text of a chord token into a chord value.
type ChordParser func(s string) (model.ChordDef, error)

// Option configures a parse call.
type Option func(*options)

type options struct {
	timeSignature model.TimeSignature
	grammar       grammar.Grammar
	parseChord    ChordParser
}

func defaultOptions() *options {
	return &options{
		timeSignature: model.DefaultTimeSignature,
		grammar:       grammar.Default(),
		parseChord:    chord.Parse,
	}
}

func buildOptions(opts []Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.grammar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrammar, err)
	}
	return o, nil
}

// WithTimeSignature sets the time signature bars are measured against.
// The default is 4/4.
func WithTimeSignature(ts model.TimeSignature) Option {
	return func(o *options) {
		o.timeSignature = ts
	}
}

// WithGrammar replaces the notation symbols. Parsing fails with
// ErrInvalidGrammar when g does not pass grammar.Validate.
func WithGrammar(g grammar.Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithChordParser replaces the chord symbol parser. Chords are compared
// with == on the values it returns.
func WithChordParser(p ChordParser) Option {
	return func(o *options) {
		o.parseChord = p
	}
}
