// Package sheet reads multi-line chord sheets: chord lines, lyric lines,
// time signature changes and blank lines. It parses every chord line, binds
// each chord line to the lyric line written under it and lays out the whole
// sheet with one of the spacers.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/parser"
)

type LineType string

const (
	EmptyLine         LineType = "emptyLine"
	TimeSignatureLine LineType = "timeSignature"
	ChordLine         LineType = "chord"
	LyricLine         LineType = "lyric"
)

type Line struct {
	Number        int                 `json:"number"`
	Text          string              `json:"text"`
	Type          LineType            `json:"type"`
	TimeSignature model.TimeSignature `json:"timeSignature"`
	Chords        *model.ChordLine    `json:"chords,omitempty"`
	Lyrics        *model.LyricLine    `json:"lyrics,omitempty"`
}

type Sheet struct {
	Lines []Line `json:"lines"`
}

func (s *Sheet) Clone() *Sheet {
	clone := &Sheet{Lines: make([]Line, len(s.Lines))}
	for i, line := range s.Lines {
		if line.Chords != nil {
			chords := line.Chords.Clone()
			line.Chords = &chords
		}
		if line.Lyrics != nil {
			lyrics := line.Lyrics.Clone()
			line.Lyrics = &lyrics
		}
		clone.Lines[i] = line
	}
	return clone
}

// ChordLines returns the parsed chord lines in sheet order.
func (s *Sheet) ChordLines() []model.ChordLine {
	var lines []model.ChordLine
	for _, line := range s.Lines {
		if line.Chords != nil {
			lines = append(lines, *line.Chords)
		}
	}
	return lines
}

// Parse classifies and parses every line of text. Chord lines sharing a
// time signature are parsed concurrently.
func Parse(ctx context.Context, text string, opts Options) (*Sheet, error) {
	opts = opts.withDefaults()
	if err := opts.Grammar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrInvalidGrammar, err)
	}

	s := &Sheet{}
	ts := opts.TimeSignature
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, "\r")
		line := Line{Number: i + 1, Text: raw}

		switch {
		case strings.TrimSpace(raw) == "":
			line.Type = EmptyLine
		case isTimeSignature(raw):
			line.Type = TimeSignatureLine
			ts, _ = model.ParseTimeSignature(raw)
		case parser.IsChordLine(raw, opts.parserOptions(ts)...):
			line.Type = ChordLine
		default:
			line.Type = LyricLine
			lyrics, err := parser.ParseLyricLine(raw, opts.parserOptions(ts)...)
			if err != nil {
				return nil, err
			}
			line.Lyrics = &lyrics
		}
		line.TimeSignature = ts
		s.Lines = append(s.Lines, line)
	}

	if err := s.parseChordLines(ctx, opts); err != nil {
		return nil, err
	}
	return s, nil
}

func isTimeSignature(raw string) bool {
	_, err := model.ParseTimeSignature(raw)
	return err == nil
}

func (s *Sheet) parseChordLines(ctx context.Context, opts Options) error {
	// indexes of chord lines, grouped by time signature in order of appearance
	groups := map[model.TimeSignature][]int{}
	var order []model.TimeSignature
	for i, line := range s.Lines {
		if line.Type != ChordLine {
			continue
		}
		if _, ok := groups[line.TimeSignature]; !ok {
			order = append(order, line.TimeSignature)
		}
		groups[line.TimeSignature] = append(groups[line.TimeSignature], i)
	}

	for _, ts := range order {
		indexes := groups[ts]
		texts := make([]string, len(indexes))
		for j, i := range indexes {
			texts[j] = s.Lines[i].Text
		}

		parsed, err := parser.ParseMany(ctx, texts, opts.parserOptions(ts)...)
		if err != nil {
			var manyErr *parser.ManyError
			if errors.As(err, &manyErr) {
				line := s.Lines[indexes[manyErr.Index]]
				return &LineError{Number: line.Number, Text: line.Text, Err: manyErr.Err}
			}
			return err
		}
		for j, i := range indexes {
			s.Lines[i].Chords = &parsed[j]
		}
	}
	return nil
}
