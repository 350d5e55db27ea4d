package cmd

import (
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	alignBars       bool
	alignLyrics     bool
	printDurations  bool
	noBarSeparators bool
	timeSignature   string
	display         string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.alignBars, "align-bars", false, "align beats of all chord lines")
	cmd.Flags().BoolVar(&f.alignLyrics, "align-lyrics", false, "place chords on the position markers of the lyrics below")
	cmd.Flags().BoolVar(&f.printDurations, "print-durations", false, "print duration markers after chords")
	cmd.Flags().BoolVar(&f.noBarSeparators, "no-bar-separators", false, "do not print bar separators")
	cmd.Flags().StringVar(&f.timeSignature, "time-signature", "4/4", "time signature until the sheet changes it")
	cmd.Flags().StringVar(&f.display, "display", "all", "all, chords or lyrics")
}

func (f renderFlags) options() (sheet.Options, error) {
	ts, err := model.ParseTimeSignature(f.timeSignature)
	if err != nil {
		return sheet.Options{}, err
	}
	display, err := sheet.ParseDisplay(f.display)
	if err != nil {
		return sheet.Options{}, err
	}

	opts := sheet.DefaultOptions()
	opts.TimeSignature = ts
	opts.AlignBars = f.alignBars
	opts.AlignChordsWithLyrics = f.alignLyrics
	opts.PrintChordsDuration = f.printDurations
	opts.PrintBarSeparators = !f.noBarSeparators
	opts.Display = display
	return opts, nil
}
