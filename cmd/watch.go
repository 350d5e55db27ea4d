package cmd

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/chordmark/logging"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/spf13/cobra"
)

var (
	watchOpts  renderFlags
	watchDelay time.Duration
)

func init() {
	watchOpts.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 200*time.Millisecond, "wait this long after the last write before rendering")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <sheet>",
	Short: "Renders a sheet again on every save",
	Long:  `Renders a sheet, then renders it again each time the file is written.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := watchOpts.options()
		if err != nil {
			return err
		}
		return watch(cmd.Context(), cmd.OutOrStdout(), args[0], watchDelay, opts)
	},
}

func watch(ctx context.Context, w io.Writer, path string, delay time.Duration, opts sheet.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file instead of writing it, so watch the directory
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	logger := logging.LoggerFromContext(ctx)
	redraw := func() {
		if err := renderSheets(ctx, w, path, opts); err != nil {
			logger.Error("render failed", "path", path, "error", err)
		}
	}
	redraw()

	debounced := debounce.New(delay)
	// drop a redraw still pending when watching stops
	defer debounced(func() {})

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("sheet changed", "path", path, "op", ev.Op.String())
			debounced(redraw)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
