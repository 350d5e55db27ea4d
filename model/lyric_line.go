package model

import "strings"

// LyricToken is a run of lyrics. A positioned token starts where a position
// marker was written in the source line.
type LyricToken struct {
	Text          string `json:"text"`
	IsPositioned  bool   `json:"isPositioned"`
	PaddingBefore int    `json:"paddingBefore,omitempty"`
	PaddingAfter  int    `json:"paddingAfter,omitempty"`
}

type LyricLine struct {
	Tokens []LyricToken `json:"tokens"`
}

func (l LyricLine) Clone() LyricLine {
	clone := l
	if l.Tokens != nil {
		clone.Tokens = make([]LyricToken, len(l.Tokens))
		copy(clone.Tokens, l.Tokens)
	}
	return clone
}

// PositionCount returns the number of position markers in the line.
func (l LyricLine) PositionCount() int {
	count := 0
	for _, t := range l.Tokens {
		if t.IsPositioned {
			count++
		}
	}
	return count
}

// Lyrics returns the text of the line with its padding applied.
func (l LyricLine) Lyrics() string {
	var sb strings.Builder
	for _, t := range l.Tokens {
		sb.WriteString(strings.Repeat(" ", t.PaddingBefore))
		sb.WriteString(t.Text)
		sb.WriteString(strings.Repeat(" ", t.PaddingAfter))
	}
	return sb.String()
}
