package log

import (
	"errors"
	"time"

	"github.com/mash-protocol/durunit/pkg/duration"
)

// Event is one journal entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the REPL session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Command is the REPL command name, e.g. "parse".
	Command string `cbor:"4,keyasint,omitempty"`

	// Input is the raw argument text of the command.
	Input string `cbor:"5,keyasint,omitempty"`

	// Output is the text printed for a result.
	Output string `cbor:"6,keyasint,omitempty"`

	// Value is the duration the command produced, if any.
	Value *duration.Duration `cbor:"7,keyasint,omitempty"`

	// Error is set for KindError events.
	Error *ErrorData `cbor:"8,keyasint,omitempty"`
}

// Kind classifies journal events.
type Kind uint8

const (
	// KindSessionStart marks the beginning of a session.
	KindSessionStart Kind = 0
	// KindCommand records a command as entered.
	KindCommand Kind = 1
	// KindResult records a successful command result.
	KindResult Kind = 2
	// KindError records a failed command.
	KindError Kind = 3
	// KindSessionEnd marks the end of a session.
	KindSessionEnd Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSessionStart:
		return "SESSION_START"
	case KindCommand:
		return "COMMAND"
	case KindResult:
		return "RESULT"
	case KindError:
		return "ERROR"
	case KindSessionEnd:
		return "SESSION_END"
	default:
		return "UNKNOWN"
	}
}

// ParseKind returns the kind with the given name. Matching is case
// sensitive on the String form.
func ParseKind(s string) (Kind, bool) {
	for k := KindSessionStart; k <= KindSessionEnd; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ErrorData describes a failed command.
type ErrorData struct {
	// Class is the duration error category.
	Class ErrorClass `cbor:"1,keyasint"`

	// Message is the full error text.
	Message string `cbor:"2,keyasint"`
}

// NewErrorData classifies err for the journal.
func NewErrorData(err error) *ErrorData {
	return &ErrorData{Class: ClassifyError(err), Message: err.Error()}
}

// ErrorClass maps duration errors to stable codes.
type ErrorClass uint8

const (
	// ErrorClassOther is any error that is not a duration error.
	ErrorClassOther ErrorClass = 0
	// ErrorClassEmptyInput corresponds to duration.ErrEmptyInput.
	ErrorClassEmptyInput ErrorClass = 1
	// ErrorClassInvalidNumber corresponds to duration.ErrInvalidNumber.
	ErrorClassInvalidNumber ErrorClass = 2
	// ErrorClassUnknownUnit corresponds to duration.ErrUnknownUnit.
	ErrorClassUnknownUnit ErrorClass = 3
	// ErrorClassOverflow corresponds to duration.ErrOverflow.
	ErrorClassOverflow ErrorClass = 4
	// ErrorClassInexact corresponds to duration.ErrInexact.
	ErrorClassInexact ErrorClass = 5
)

// String returns the class name.
func (c ErrorClass) String() string {
	switch c {
	case ErrorClassOther:
		return "OTHER"
	case ErrorClassEmptyInput:
		return "EMPTY_INPUT"
	case ErrorClassInvalidNumber:
		return "INVALID_NUMBER"
	case ErrorClassUnknownUnit:
		return "UNKNOWN_UNIT"
	case ErrorClassOverflow:
		return "OVERFLOW"
	case ErrorClassInexact:
		return "INEXACT"
	default:
		return "UNKNOWN"
	}
}

// ClassifyError returns the class of err.
func ClassifyError(err error) ErrorClass {
	switch {
	case errors.Is(err, duration.ErrEmptyInput):
		return ErrorClassEmptyInput
	case errors.Is(err, duration.ErrInvalidNumber):
		return ErrorClassInvalidNumber
	case errors.Is(err, duration.ErrUnknownUnit):
		return ErrorClassUnknownUnit
	case errors.Is(err, duration.ErrOverflow):
		return ErrorClassOverflow
	case errors.Is(err, duration.ErrInexact):
		return ErrorClassInexact
	default:
		return ErrorClassOther
	}
}
