package parser

import (
	"strings"

	"github.com/jsphweid/chordmark/model"
)

// ParseLyricLine splits a lyric line on its position markers. Text written
// before the first marker becomes an unpositioned token; every marker starts
// a positioned token that runs to the next marker or the end of the line.
//
//	"The first _chord comes _later" -> "The first ", "chord comes ", "later"
func ParseLyricLine(line string, opts ...Option) (model.LyricLine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return model.LyricLine{}, err
	}
	marker := string(o.grammar.PositionMarker)

	parts := strings.Split(line, marker)
	lyricLine := model.LyricLine{Tokens: []model.LyricToken{}}

	if parts[0] != "" {
		lyricLine.Tokens = append(lyricLine.Tokens, model.LyricToken{Text: parts[0]})
	}
	for _, part := range parts[1:] {
		lyricLine.Tokens = append(lyricLine.Tokens, model.LyricToken{Text: part, IsPositioned: true})
	}
	return lyricLine, nil
}
