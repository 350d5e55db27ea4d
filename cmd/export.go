package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/file"
	"github.com/jsphweid/chordmark/logging"
	"github.com/jsphweid/chordmark/midi"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/spf13/cobra"
)

var (
	exportOpts  renderFlags
	exportTempo float64
)

func init() {
	exportOpts.register(exportCmd)
	exportCmd.Flags().Float64Var(&exportTempo, "tempo", constants.DefaultTempo, "tempo in beats per minute")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <sheet> <out.mid>",
	Short: "Exports chords as MIDI markers",
	Long: `Writes a standard MIDI file holding one marker per chord of the sheet,
placed on the beat the chord starts on.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := exportOpts.options()
		if err != nil {
			return err
		}
		return export(cmd.Context(), args[0], args[1], exportTempo, opts)
	},
}

func export(ctx context.Context, sheetPath, outPath string, tempo float64, opts sheet.Options) error {
	if tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", tempo)
	}

	text, err := file.ReadSheet(sheetPath)
	if err != nil {
		return err
	}
	s, err := sheet.Parse(ctx, text, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", sheetPath, err)
	}
	s = sheet.Layout(s, opts)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := midi.WriteChordMarkers(out, s.ChordLines(), tempo); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	markers, err := midi.ReadChordMarkersFile(outPath)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", outPath, err)
	}
	logging.LoggerFromContext(ctx).Info("exported chord markers", "path", outPath, "markers", len(markers), "tempo", tempo)
	return nil
}
