package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
)

var ErrInvalidChord = errors.New("invalid chord")

// descriptor lexemes, longest first so that "maj" wins over "ma" and "m"
var lexemes = []string{
	"omit", "maj", "min", "dim", "aug", "sus", "add", "alt",
	"Ma", "ma", "mi", "no", "M", "m", "-", "+", "°", "o", "ø", "Δ", "^",
	"#", "b", "(", ")", ",",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

var normalized = map[string]string{
	"maj": "Ma", "ma": "Ma", "M": "Ma", "Δ": "Ma", "^": "Ma",
	"min": "mi", "m": "mi", "-": "mi",
	"°": "dim", "o": "dim",
	"+": "aug",
}

func parseNote(s string) (string, string, bool) {
	if s == "" || s[0] < 'A' || s[0] > 'G' {
		return "", s, false
	}
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		return s[:2], s[2:], true
	}
	return s[:1], s[1:], true
}

func parseDescriptor(s string) (string, bool) {
	var sb strings.Builder
	for len(s) > 0 {
		matched := false
		for _, lexeme := range lexemes {
			if strings.HasPrefix(s, lexeme) {
				if n, ok := normalized[lexeme]; ok {
					sb.WriteString(n)
				} else {
					sb.WriteString(lexeme)
				}
				s = s[len(lexeme):]
				matched = true
				break
			}
		}
		if !matched {
			return "", false
		}
	}
	return sb.String(), true
}

// Parse reads a chord symbol such as "Am7", "F#mi7(b5)/E" or "Cmaj7".
// Quality spellings are normalized ("m", "min" and "-" become "mi") so that
// equivalent notations compare equal.
func Parse(s string) (model.ChordDef, error) {
	var def model.ChordDef

	body := s
	if i := strings.LastIndex(s, "/"); i >= 0 {
		bass, rest, ok := parseNote(s[i+1:])
		if !ok || rest != "" {
			return def, fmt.Errorf("%w %q: bad bass note", ErrInvalidChord, s)
		}
		def.Bass = bass
		body = s[:i]
	}

	root, rest, ok := parseNote(body)
	if !ok {
		return def, fmt.Errorf("%w %q: bad root note", ErrInvalidChord, s)
	}
	def.Root = root

	descriptor, ok := parseDescriptor(rest)
	if !ok {
		return def, fmt.Errorf("%w %q: unknown descriptor %q", ErrInvalidChord, s, rest)
	}
	def.Descriptor = descriptor

	return def, nil
}

// Symbol prints a parsed chord.
func Symbol(def model.ChordDef) string {
	if def.Bass == "" {
		return def.Root + def.Descriptor
	}
	return def.Root + def.Descriptor + "/" + def.Bass
}

// AssignSymbols returns a copy of line where every chord carries its
// printable symbol.
func AssignSymbols(line model.ChordLine, g grammar.Grammar) model.ChordLine {
	return line.MapChords(func(c model.Chord) model.Chord {
		if c.Model.IsNoChord {
			c.Symbol = g.NoChord
		} else {
			c.Symbol = Symbol(c.Model.Def)
		}
		return c
	})
}
