package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/chordmark/chord"
	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/parser"
	"github.com/jsphweid/chordmark/spacer"
	"github.com/spf13/cobra"
)

var (
	inspectTimeSignature string
	inspectLyrics        string
)

func init() {
	inspectCmd.Flags().StringVar(&inspectTimeSignature, "time-signature", "4/4", "time signature of the line")
	inspectCmd.Flags().StringVar(&inspectLyrics, "lyrics", "", "lyric line to align the chords with")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chord line>",
	Short: "Prints the parsed tree of a chord line",
	Long:  `Parses a single chord line and prints its bars and chords as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := model.ParseTimeSignature(inspectTimeSignature)
		if err != nil {
			return err
		}
		line, err := inspect(args[0], ts, inspectLyrics)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(line, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// inspect parses line and, when lyrics are given, spaces it on them.
func inspect(line string, ts model.TimeSignature, lyrics string) (model.ChordLine, error) {
	parsed, err := parser.ParseChordLine(line, parser.WithTimeSignature(ts))
	if err != nil {
		return model.ChordLine{}, err
	}
	parsed = chord.AssignSymbols(parsed, grammar.Default())
	if lyrics == "" {
		return parsed, nil
	}

	lyricLine, err := parser.ParseLyricLine(lyrics)
	if err != nil {
		return model.ChordLine{}, err
	}
	spaced, _ := spacer.ChordLyrics(parsed, lyricLine, spacer.DefaultOptions())
	return spaced, nil
}
