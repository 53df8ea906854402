package schedule

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/model"
)

var ErrConflict = errors.New("schedule: task conflicts with an existing task")

// ConflictObserver is notified, in registration order, whenever an insert or
// edit is rejected because it would overlap an existing task.
type ConflictObserver interface {
	OnConflict(message string, existing model.Task) error
}

// ConflictError is returned by Insert and Edit when the candidate overlaps
// a task already in the store.
type ConflictError struct {
	Message   string
	Candidate model.Task
	Existing  model.Task
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Existing)
}

// Duplicate reports whether the candidate is the same logical task as the
// one it collided with.
func (e *ConflictError) Duplicate() bool {
	return e.Candidate.Key().Equal(e.Existing.Key())
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// LogNotifier reports conflicts as warnings on a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) OnConflict(message string, existing model.Task) error {
	if n == nil || n.Logger == nil {
		return nil
	}
	n.Logger.Warn("conflict detected", "message", message, "existing", existing.String())
	return nil
}

type observerSet struct {
	items []ConflictObserver
}

func (s *observerSet) add(o ConflictObserver) bool {
	if o == nil || s.indexOf(o) >= 0 {
		return false
	}
	s.items = append(s.items, o)
	return true
}

func (s *observerSet) remove(o ConflictObserver) bool {
	i := s.indexOf(o)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// indexOf compares observers by value; values of non-comparable dynamic
// types never match, so they can be added but not deduplicated.
func (s *observerSet) indexOf(o ConflictObserver) int {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return -1
	}
	for i, item := range s.items {
		if reflect.TypeOf(item) == reflect.TypeOf(o) && item == o {
			return i
		}
	}
	return -1
}

func (s *observerSet) snapshot() []ConflictObserver {
	out := make([]ConflictObserver, len(s.items))
	copy(out, s.items)
	return out
}

// notify runs every observer; a failing or panicking observer is logged and
// skipped.
func notify(logger *log.Logger, observers []ConflictObserver, message string, existing model.Task) {
	for _, o := range observers {
		if err := safeNotify(o, message, existing); err != nil {
			logger.Error("error notifying observer", "observer", fmt.Sprintf("%T", o), "err", err)
		}
	}
}

func safeNotify(o ConflictObserver, message string, existing model.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return o.OnConflict(message, existing)
}
