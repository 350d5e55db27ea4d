package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jsphweid/chordmark/file"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/spf13/cobra"
)

var renderOpts renderFlags

func init() {
	renderOpts.register(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file or directory>",
	Short: "Renders chord sheets as text",
	Long:  `Renders a chord sheet, or every sheet found in a directory, as plain text.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := renderOpts.options()
		if err != nil {
			return err
		}
		return renderSheets(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
	},
}

func renderSheets(ctx context.Context, w io.Writer, path string, opts sheet.Options) error {
	sheets, err := file.LoadSheets(path)
	if err != nil {
		return err
	}

	for i, s := range sheets {
		if len(sheets) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# %s\n", s.Path)
		}
		rendered, err := sheet.RenderText(ctx, s.Text, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Path, err)
		}
		fmt.Fprintln(w, rendered)
	}
	return nil
}
