package sheet

import (
	"context"
	"strings"

	"github.com/jsphweid/chordmark/render"
)

// Render prints a laid out sheet as plain text.
func Render(s *Sheet, opts Options) string {
	opts = opts.withDefaults()
	spacing := opts.spacing()

	var out []string
	for _, line := range s.Lines {
		switch line.Type {
		case EmptyLine:
			out = append(out, "")
		case TimeSignatureLine:
			out = append(out, line.TimeSignature.String())
		case ChordLine:
			if opts.Display != DisplayLyrics {
				out = append(out, render.ChordLine(*line.Chords, spacing))
			}
		case LyricLine:
			if opts.Display != DisplayChords {
				out = append(out, render.LyricLine(*line.Lyrics))
			}
		}
	}
	return strings.Join(out, "\n")
}

// RenderText parses, lays out and renders text in one go.
func RenderText(ctx context.Context, text string, opts Options) (string, error) {
	s, err := Parse(ctx, text, opts)
	if err != nil {
		return "", err
	}
	return Render(Layout(s, opts), opts), nil
}
