package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jsphweid/chordmark/chord"
	"github.com/jsphweid/chordmark/file"
	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/jsphweid/chordmark/util"
	"github.com/spf13/cobra"
)

var reportTimeSignature string

func init() {
	reportCmd.Flags().StringVar(&reportTimeSignature, "time-signature", "4/4", "time signature until a sheet changes it")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file or directory>",
	Short: "Creates a report",
	Long:  `Counts bars, chords and symbols of one or more chord sheets`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := renderFlags{timeSignature: reportTimeSignature, display: string(sheet.DisplayAll)}
		opts, err := flags.options()
		if err != nil {
			return err
		}
		r, err := report(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		r.print(cmd.OutOrStdout())
		return nil
	},
}

type sheetsReport struct {
	numFiles         int
	numChordLines    int
	numLyricLines    int
	numBars          int
	numRepeatedBars  int
	numUnevenBars    int
	numChords        int
	numSubBeatGroups int
	numNoChords      int
	symbols          map[string]int
}

func report(ctx context.Context, path string, opts sheet.Options) (sheetsReport, error) {
	r := sheetsReport{symbols: map[string]int{}}

	sheets, err := file.LoadSheets(path)
	if err != nil {
		return r, err
	}

	for _, f := range sheets {
		s, err := sheet.Parse(ctx, f.Text, opts)
		if err != nil {
			return r, fmt.Errorf("%s: %w", f.Path, err)
		}
		r.numFiles++
		r.add(s, opts.Grammar)
	}
	return r, nil
}

func (r *sheetsReport) add(s *sheet.Sheet, g grammar.Grammar) {
	for _, line := range s.Lines {
		if line.Type == sheet.LyricLine {
			r.numLyricLines++
		}
	}

	for _, line := range s.ChordLines() {
		r.numChordLines++
		line = chord.AssignSymbols(line, g)
		r.numChords += line.ChordCount()
		for _, bar := range line.AllBars {
			r.numBars++
			if bar.IsRepeated {
				r.numRepeatedBars++
			}
			if bar.HasUnevenChordsDurations {
				r.numUnevenBars++
			}
			for _, c := range bar.AllChords {
				if c.IsFirstOfSubBeat {
					r.numSubBeatGroups++
				}
				if c.Model.IsNoChord {
					r.numNoChords++
				}
				r.symbols[c.Symbol]++
			}
		}
	}
}

func (r sheetsReport) print(w io.Writer) {
	fmt.Fprintf(w, "report.numFiles: %v\n", r.numFiles)
	fmt.Fprintf(w, "report.numChordLines: %v\n", r.numChordLines)
	fmt.Fprintf(w, "report.numLyricLines: %v\n", r.numLyricLines)
	fmt.Fprintf(w, "report.numBars: %v\n", r.numBars)
	fmt.Fprintf(w, "report.numRepeatedBars: %v\n", r.numRepeatedBars)
	fmt.Fprintf(w, "report.numUnevenBars: %v\n", r.numUnevenBars)
	fmt.Fprintf(w, "report.numChords: %v\n", r.numChords)
	fmt.Fprintf(w, "report.numSubBeatGroups: %v\n", r.numSubBeatGroups)
	fmt.Fprintf(w, "report.numNoChords: %v\n", r.numNoChords)

	counts := make([]int, 0, len(r.symbols))
	for _, symbol := range util.SortedKeys(r.symbols) {
		fmt.Fprintf(w, "  %s: %v\n", symbol, r.symbols[symbol])
		counts = append(counts, r.symbols[symbol])
	}
	fmt.Fprintf(w, "report.numSymbols: %v (sum %v)\n", len(r.symbols), util.Sum(counts))
}
