package cli

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/happy/internal/command"
)

// ErrUnrecognizedCommand is returned by Session.Execute for input that
// names no known command. The session prints nothing for it; the caller
// decides how to report it.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

// InputErrorKind classifies recoverable input errors.
type InputErrorKind int

const (
	ArityError InputErrorKind = iota
	TypeError
	BoundsError
	MalformedKeywordSplit
	EmptyDescription
)

func (k InputErrorKind) String() string {
	switch k {
	case ArityError:
		return "arity"
	case TypeError:
		return "type"
	case BoundsError:
		return "bounds"
	case MalformedKeywordSplit:
		return "keyword split"
	case EmptyDescription:
		return "empty description"
	}
	return fmt.Sprintf("InputErrorKind(%d)", int(k))
}

// InputError is a malformed command for a known keyword. It is reported
// inline and never changes the task list.
type InputError struct {
	Kind    InputErrorKind
	Command command.Keyword
	Err     error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("%s: %s error", e.Command, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error { return e.Err }

func inputErr(kind InputErrorKind, cmd command.Keyword, err error) *InputError {
	return &InputError{Kind: kind, Command: cmd, Err: err}
}
