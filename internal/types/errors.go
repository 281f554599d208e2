package types

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can react to the class
// (report "nothing to keep" vs. surface an encoder crash) without parsing
// messages.
type Kind int

const (
	KindUnknown Kind = iota
	// KindSourceOpen: input missing, unreadable, or not a decodable container.
	KindSourceOpen
	// KindMediaDecode: no audio track, or audio extraction/decoding failed.
	KindMediaDecode
	// KindSilenceDetection: the detection routine failed on the decoded audio.
	KindSilenceDetection
	// KindEmptyResult: the whole input was classified as silence; zero keep
	// intervals, so there is nothing to write.
	KindEmptyResult
	// KindEncoding: cutting or writing the output failed.
	KindEncoding
)

func (k Kind) String() string {
	switch k {
	case KindSourceOpen:
		return "source open"
	case KindMediaDecode:
		return "media decode"
	case KindSilenceDetection:
		return "silence detection"
	case KindEmptyResult:
		return "empty result"
	case KindEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

// Error is a stage failure. Every stage error carries its kind, the stage
// name for context, and the wrapped cause.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failed", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps cause as a stage failure of the given kind.
func NewError(kind Kind, stage string, cause error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: cause}
}

// Errorf builds a stage failure from a format string.
func Errorf(kind Kind, stage, format string, args ...any) *Error {
	return &Error{Kind: kind, Stage: stage, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the failure kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
