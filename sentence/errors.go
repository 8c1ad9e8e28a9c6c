package sentence

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is the base of every MalformedLineError.
	ErrMalformedLine = errors.New("malformed line")
	// ErrMalformedGroup is the base of every MalformedGroupError.
	ErrMalformedGroup = errors.New("malformed multiword token")
	// ErrNotFound is returned when an edit target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSplit is the base of every SplitError.
	ErrInvalidSplit = errors.New("invalid split")
)

// MalformedLineError is a line that is neither blank, a comment, a range
// marker nor a well-formed token line.
type MalformedLineError struct {
	Line   int // 1-based position in the sentence block, 0 when unknown
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// MalformedGroupError is a range line whose declared span does not match
// the lines that follow it.
type MalformedGroupError struct {
	Line   int
	Span   string
	Reason string
}

func (e *MalformedGroupError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: multiword token %s: %s", e.Line, e.Span, e.Reason)
	}
	return fmt.Sprintf("multiword token %s: %s", e.Span, e.Reason)
}

func (e *MalformedGroupError) Unwrap() error {
	return ErrMalformedGroup
}

// NotFoundError is a lookup whose target is absent.
type NotFoundError struct {
	Kind string // "token", "multiword token", "doc", "sentence"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SplitError is an expand offset that would leave one half empty.
type SplitError struct {
	ID     int
	Index  int
	Length int
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("cannot split token %d at %d: form has %d characters", e.ID, e.Index, e.Length)
}

func (e *SplitError) Unwrap() error {
	return ErrInvalidSplit
}

// atLine sets the line number of a line or group error that was built
// without one.
func atLine(err error, line int) error {
	var le *MalformedLineError
	if errors.As(err, &le) && le.Line == 0 {
		le.Line = line
	}

	var ge *MalformedGroupError
	if errors.As(err, &ge) && ge.Line == 0 {
		ge.Line = line
	}

	return err
}
