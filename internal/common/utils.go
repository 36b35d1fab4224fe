package common

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/vocab/models"
)

// Exit codes of the vocab command.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitConfiguration     = 2
	ExitSourceUnavailable = 3
	ExitDecoding          = 4
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch models.ClassifyError(err) {
	case "":
		return ExitOK
	case models.ErrorTypeConfiguration:
		return ExitConfiguration
	case models.ErrorTypeSourceUnavailable:
		return ExitSourceUnavailable
	case models.ErrorTypeDecoding:
		return ExitDecoding
	default:
		return ExitFailure
	}
}

// UserMessage returns a short message for err that is safe to print to the terminal.
// The full error goes to the log.
func UserMessage(err error) string {
	switch models.ClassifyError(err) {
	case "":
		return ""
	case models.ErrorTypeConfiguration:
		return "invalid configuration: " + err.Error()
	case models.ErrorTypeSourceUnavailable:
		return "could not read input: " + err.Error()
	case models.ErrorTypeDecoding:
		return "input is not valid UTF-8 text"
	case models.ErrorTypeCanceled:
		return "interrupted"
	default:
		return "build failed: " + err.Error()
	}
}

// ParseLogLevel converts a level name from the config file. Unknown names yield Info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns the JSON logger used by every command. quiet wins over verbose.
func NewLogger(w io.Writer, level string, quiet, verbose bool) *slog.Logger {
	logLevel := ParseLogLevel(level)
	if verbose {
		logLevel = slog.LevelDebug
	}
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// SanitizePath performs basic cleanup on paths to handle common copy-paste issues:
// surrounding whitespace and quotes.
func SanitizePath(rawPath string) string {
	cleaned := strings.TrimSpace(rawPath)

	// Example: "'notes.txt'" -> "notes.txt"
	for _, quote := range []string{`"`, "'", "`"} {
		if len(cleaned) >= 2 && strings.HasPrefix(cleaned, quote) && strings.HasSuffix(cleaned, quote) {
			cleaned = cleaned[1 : len(cleaned)-1]
		}
	}

	return strings.TrimSpace(cleaned)
}

// SplitList splits a comma separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = SanitizePath(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
