package constants

import "os"

func GetListenAddr() string {
	addr := os.Getenv("CHORDMARK_LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	level := os.Getenv("CHORDMARK_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetLogFormat() string {
	format := os.Getenv("CHORDMARK_LOG_FORMAT")
	if format != "" {
		return format
	}
	return "text"
}

// GetSentryDSN returns an empty string when error reporting is disabled.
func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

// spacing, in columns
const (
	DefaultSpacesAfter = 2
	EmptyBeatSpaces    = 1
	LyricsSpacesAfter  = 1
	SubBeatSpaces      = 1
)

const (
	MidiTicksPerQuarter = 960
	DefaultTempo        = 120.0
)

// sheet files picked up when a directory is given
var SheetExtensions = []string{".cm", ".chords", ".txt"}
