package parser

import (
	"unicode"

	"github.com/jsphweid/chordmark/grammar"
)

type token struct {
	text   string
	offset int // rune offset in the source line
}

// tokenize validates the sub-beat markers of line and splits it on
// whitespace. Whitespace inside parentheses is dropped so that alteration
// lists such as "C(add b9)" stay a single token.
func tokenize(line string, g grammar.Grammar) ([]token, error) {
	if err := checkSubBeatConsistency(line, g); err != nil {
		return nil, err
	}

	tokens := split(line)
	if len(tokens) > 0 && g.IsBarRepeat(tokens[0].text) {
		return nil, &BarRepeatError{Line: line, Token: tokens[0].text}
	}
	return tokens, nil
}

func split(line string) []token {
	var (
		tokens  []token
		current []rune
		start   int
		depth   int
	)
	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, token{text: string(current), offset: start})
			current = current[:0]
		}
	}

	i := 0
	for _, r := range line {
		switch {
		case unicode.IsSpace(r) && depth > 0:
		case unicode.IsSpace(r):
			flush()
		default:
			if len(current) == 0 {
				start = i
			}
			if r == '(' {
				depth++
			} else if r == ')' && depth > 0 {
				depth--
			}
			current = append(current, r)
		}
		i++
	}
	flush()
	return tokens
}

func checkSubBeatConsistency(line string, g grammar.Grammar) error {
	inSubBeat := false
	lastSymbol, lastPosition := "", 0

	i := 0
	for _, r := range line {
		switch r {
		case g.SubBeatOpener:
			if inSubBeat {
				return &InvalidSubBeatGroupError{Line: line, Symbol: string(r), Position: i, Reason: "nested group"}
			}
			inSubBeat = true
			lastSymbol, lastPosition = string(r), i
		case g.SubBeatCloser:
			if !inSubBeat {
				return &InvalidSubBeatGroupError{Line: line, Symbol: string(r), Position: i, Reason: "group closed before being opened"}
			}
			inSubBeat = false
			lastSymbol, lastPosition = string(r), i
		}
		i++
	}
	if inSubBeat {
		return &InvalidSubBeatGroupError{Line: line, Symbol: lastSymbol, Position: lastPosition, Reason: "group never closed"}
	}
	return nil
}
