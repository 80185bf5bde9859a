package parser

import (
	"errors"
	"fmt"
)

// Fatal parse failures. Anything the tolerant reader can recover from is
// logged and degraded instead of surfaced through these.
var (
	// ErrEmptyDocument indicates the input byte stream was empty or
	// whitespace only.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrUnreadableDocument indicates no structural content could be
	// recovered from the input at all.
	ErrUnreadableDocument = errors.New("document is unreadable")
)

// ParseError wraps a fatal parse failure with the operation context. Only
// truly unreadable input produces a ParseError; malformed but partially
// readable documents yield a best-effort result instead.
type ParseError struct {
	Op       string // Operation being performed (e.g. "Parse", "ReadTree")
	Platform string // Platform tag the caller requested
	Err      error  // Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s failed for %s document: %v", e.Op, e.Platform, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
