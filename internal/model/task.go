package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of task kinds.
type Kind int

const (
	Todo Kind = iota
	Deadline
	Event
)

func (k Kind) String() string {
	switch k {
	case Todo:
		return "todo"
	case Deadline:
		return "deadline"
	case Event:
		return "event"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Dated reports whether tasks of this kind carry a date.
func (k Kind) Dated() bool {
	return k == Deadline || k == Event
}

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrMissingWhen      = errors.New("missing date")
	ErrUnexpectedWhen   = errors.New("date not allowed for todo")
)

// Task is the domain model for a tracked entry.
// Kind, Description and When never change after creation; only Done does.
type Task struct {
	ID          string
	Kind        Kind
	Description string
	When        string
	Done        bool
}

// NewTask validates the kind/date pairing and returns a pending task.
func NewTask(kind Kind, description, when string) (Task, error) {
	description = strings.TrimSpace(description)
	when = strings.TrimSpace(when)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}
	switch {
	case kind.Dated() && when == "":
		return Task{}, fmt.Errorf("%w: %s", ErrMissingWhen, kind)
	case !kind.Dated() && when != "":
		return Task{}, ErrUnexpectedWhen
	}
	return Task{Kind: kind, Description: description, When: when}, nil
}
