package parser

import (
	"context"
	"runtime"
	"sync"

	"github.com/jsphweid/chordmark/model"
	"golang.org/x/sync/errgroup"
)

// ParseMany parses independent chord lines concurrently. Results keep the
// order of lines. On failure the lowest failing line is returned as a
// *ManyError; lines after it are skipped once it is known.
func ParseMany(ctx context.Context, lines []string, opts ...Option) ([]model.ChordLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	results := make([]model.ChordLine, len(lines))
	errs := make([]error, len(lines))

	var mu sync.Mutex
	failed := len(lines)

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mu.Lock()
			skip := i > failed
			mu.Unlock()
			if skip {
				return nil
			}

			parsed, err := ParseChordLine(line, opts...)
			if err != nil {
				errs[i] = err
				mu.Lock()
				failed = min(failed, i)
				mu.Unlock()
				return nil
			}
			results[i] = parsed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if failed < len(lines) {
		return nil, &ManyError{Index: failed, Err: errs[failed]}
	}
	return results, nil
}
