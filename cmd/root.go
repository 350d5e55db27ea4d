package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "chordmark",
	Short: "Parses and lays out chord line notation",
	Long: `chordmark reads chord sheets written in a compact notation
(C.. G.. % [Am F] NC) and prints them with chords aligned on beats
or on the lyrics below them.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (defaults to $CHORDMARK_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "text or json (defaults to $CHORDMARK_LOG_FORMAT)")
}

func setupLogging() error {
	if logLevel == "" {
		logLevel = constants.GetLogLevel()
	}
	if logFormat == "" {
		logFormat = constants.GetLogFormat()
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(os.Stderr, level, format)
	return nil
}

func Execute() {
	// a missing .env is fine, the environment may be set already
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
