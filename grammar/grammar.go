// Package grammar holds the symbols of the chord line notation.
//
// A Grammar is a plain value: parsers and spacers receive a copy and never
// share mutable state through it. Default returns the standard notation:
//
//	C.. G.. % [Am F] NC...
package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Grammar struct {
	// DurationMarker repeated N times after a chord means N beats.
	DurationMarker rune
	// BarRepeat repeats the previous bar once per occurrence.
	BarRepeat rune
	// SubBeatOpener and SubBeatCloser bracket chords sharing one beat.
	SubBeatOpener rune
	SubBeatCloser rune
	// NoChord is the reserved token for silence.
	NoChord string
	// PositionMarker marks, in a lyric line, where the next chord starts.
	PositionMarker rune
}

var standard = Grammar{
	DurationMarker: '.',
	BarRepeat:      '%',
	SubBeatOpener:  '[',
	SubBeatCloser:  ']',
	NoChord:        "NC",
	PositionMarker: '_',
}

func Default() Grammar {
	return standard
}

// Validate rejects grammars whose single-character symbols collide or are
// whitespace, since the tokenizer splits on whitespace.
func (g Grammar) Validate() error {
	symbols := map[string]rune{
		"duration marker": g.DurationMarker,
		"bar repeat":      g.BarRepeat,
		"sub-beat opener": g.SubBeatOpener,
		"sub-beat closer": g.SubBeatCloser,
		"position marker": g.PositionMarker,
	}
	seen := make(map[rune]string, len(symbols))
	for name, r := range symbols {
		if r == 0 || r == utf8.RuneError || r == ' ' || r == '\t' {
			return fmt.Errorf("invalid %s symbol %q", name, r)
		}
		if other, ok := seen[r]; ok {
			return fmt.Errorf("%s and %s share the symbol %q", name, other, r)
		}
		seen[r] = name
	}
	if g.NoChord == "" || strings.ContainsAny(g.NoChord, " \t") {
		return fmt.Errorf("invalid no-chord literal %q", g.NoChord)
	}
	return nil
}

// IsBarRepeat reports whether token is made only of bar repeat symbols.
func (g Grammar) IsBarRepeat(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r != g.BarRepeat {
			return false
		}
	}
	return true
}

// OpensSubBeat reports whether token starts a sub-beat group.
func (g Grammar) OpensSubBeat(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return r == g.SubBeatOpener
}

// ClosesSubBeat reports whether token ends a sub-beat group.
func (g Grammar) ClosesSubBeat(token string) bool {
	r, _ := utf8.DecodeLastRuneInString(token)
	return r == g.SubBeatCloser
}

// DurationMarkers counts the duration markers trailing a chord token,
// ignoring a trailing sub-beat closer.
func (g Grammar) DurationMarkers(token string) int {
	token = strings.TrimSuffix(token, string(g.SubBeatCloser))
	count := 0
	for len(token) > 0 {
		r, size := utf8.DecodeLastRuneInString(token)
		if r != g.DurationMarker {
			break
		}
		count++
		token = token[:len(token)-size]
	}
	return count
}

// Clean strips sub-beat markers and trailing duration markers, leaving the
// bare chord text.
func (g Grammar) Clean(token string) string {
	token = strings.TrimPrefix(token, string(g.SubBeatOpener))
	token = strings.TrimSuffix(token, string(g.SubBeatCloser))
	return strings.TrimRight(token, string(g.DurationMarker))
}

// IsNoChord reports whether the cleaned token is the no-chord literal.
func (g Grammar) IsNoChord(cleaned string) bool {
	return cleaned == g.NoChord
}
