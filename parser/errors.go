package parser

import (
	"errors"
	"fmt"
)

// ErrNoBarToRepeat is wrapped by BarRepeatError.
var ErrNoBarToRepeat = errors.New("a chord line cannot start with the bar repeat symbol")

var ErrInvalidGrammar = errors.New("invalid grammar")

// IncorrectBeatCountError is returned when the chords of a bar do not add up
// to the bar's beat count.
type IncorrectBeatCountError struct {
	Token            string
	Duration         int
	CurrentBeatCount int
	BeatCount        int
}

func (e *IncorrectBeatCountError) Error() string {
	return fmt.Sprintf("incorrect beat count: %q (%d beats) brings the bar to %d beats, expected %d",
		e.Token, e.Duration, e.CurrentBeatCount, e.BeatCount)
}

// InvalidChordRepetitionError is returned when the same chord is written
// twice in a row within a bar.
type InvalidChordRepetitionError struct {
	Token string
}

func (e *InvalidChordRepetitionError) Error() string {
	return fmt.Sprintf("invalid chord repetition: %q repeats the previous chord", e.Token)
}

// InvalidSubBeatGroupError covers unbalanced or nested group markers, groups
// of the wrong size and duration markers inside a group.
type InvalidSubBeatGroupError struct {
	Line     string
	Symbol   string
	Position int
	Reason   string
}

func (e *InvalidSubBeatGroupError) Error() string {
	return fmt.Sprintf("invalid sub-beat group: %s: %q at position %d in %q",
		e.Reason, e.Symbol, e.Position, e.Line)
}

// BarRepeatError is returned when a bar repeat has no closed bar before it
// to repeat.
type BarRepeatError struct {
	Line  string
	Token string
}

func (e *BarRepeatError) Error() string {
	return fmt.Sprintf("%s: %q in %q", ErrNoBarToRepeat, e.Token, e.Line)
}

func (e *BarRepeatError) Unwrap() error {
	return ErrNoBarToRepeat
}

// InvalidChordError is returned when the chord parser rejects a token.
type InvalidChordError struct {
	Token string
	Err   error
}

func (e *InvalidChordError) Error() string {
	return fmt.Sprintf("invalid chord %q: %v", e.Token, e.Err)
}

func (e *InvalidChordError) Unwrap() error {
	return e.Err
}

// ManyError locates a failure among the lines given to ParseMany.
type ManyError struct {
	Index int
	Err   error
}

func (e *ManyError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Index, e.Err)
}

func (e *ManyError) Unwrap() error {
	return e.Err
}
