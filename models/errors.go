package models

import (
	"context"
	"errors"
)

var (
	// ErrSourceUnavailable reports a source that cannot be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDecoding reports a batch whose bytes are not valid UTF-8 text.
	ErrDecoding = errors.New("decoding failure")
	// ErrConfiguration reports invalid settings, detected before any I/O.
	ErrConfiguration = errors.New("configuration error")
)

// Error types reported by ClassifyError.
const (
	ErrorTypeSourceUnavailable = "source_unavailable"
	ErrorTypeDecoding          = "decoding_error"
	ErrorTypeConfiguration     = "config_error"
	ErrorTypeCanceled          = "canceled"
	ErrorTypeUnknown           = "unknown"
)

// ClassifyError maps err to one of the ErrorType constants.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return ErrorTypeConfiguration
	case errors.Is(err, ErrSourceUnavailable):
		return ErrorTypeSourceUnavailable
	case errors.Is(err, ErrDecoding):
		return ErrorTypeDecoding
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeCanceled
	default:
		return ErrorTypeUnknown
	}
}
