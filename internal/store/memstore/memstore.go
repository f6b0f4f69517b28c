package memstore

import (
	"crypto/rand"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/idilsaglam/happy/internal/model"
	"github.com/oklog/ulid/v2"
)

// Memory-backed task list. Lives for one session, nothing is written to disk.
// Not safe for concurrent use: positions shift on delete, so callers must
// serialize access.

var ErrOutOfBounds = errors.New("index out of bounds")

// BoundsError reports a 0-based index outside [0, Len).
// It satisfies errors.Is(err, ErrOutOfBounds).
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Len, e.Index)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

type Store struct {
	items   []model.Task
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func New() *Store {
	return &Store{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add appends t and returns its 1-based position and the new total.
func (s *Store) Add(t model.Task) (position, total int) {
	t.ID = s.newID()
	s.items = append(s.items, t)
	return len(s.items), len(s.items)
}

// Complete marks the task at 0-based index i as done. Completing an
// already-done task is a no-op.
func (s *Store) Complete(i int) (model.Task, error) {
	if err := s.check(i); err != nil {
		return model.Task{}, err
	}
	s.items[i].Done = true
	return s.items[i], nil
}

// Delete removes the task at 0-based index i and returns it with the new total.
func (s *Store) Delete(i int) (model.Task, int, error) {
	if err := s.check(i); err != nil {
		return model.Task{}, len(s.items), err
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return removed, len(s.items), nil
}

// Get returns the task at 0-based index i.
func (s *Store) Get(i int) (model.Task, error) {
	if err := s.check(i); err != nil {
		return model.Task{}, err
	}
	return s.items[i], nil
}

func (s *Store) Len() int { return len(s.items) }

// All yields every task with its 0-based index, in insertion order.
func (s *Store) All() iter.Seq2[int, model.Task] {
	return s.filter(func(model.Task) bool { return true })
}

// Find yields tasks whose description contains keyword.
func (s *Store) Find(keyword string) iter.Seq2[int, model.Task] {
	return s.filter(func(t model.Task) bool {
		return strings.Contains(t.Description, keyword)
	})
}

// SearchByDate yields dated tasks whose When equals token exactly.
func (s *Store) SearchByDate(token string) iter.Seq2[int, model.Task] {
	return s.filter(func(t model.Task) bool {
		return t.Kind.Dated() && t.When == token
	})
}

func (s *Store) filter(keep func(model.Task) bool) iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, t := range s.items {
			if !keep(t) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.items) {
		return &BoundsError{Index: i, Len: len(s.items)}
	}
	return nil
}

func (s *Store) newID() string {
	id, err := ulid.New(ulid.Timestamp(s.now()), s.entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", s.now().UnixNano())
	}
	return id.String()
}
