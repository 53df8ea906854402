package schedule

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/model"
)

var (
	ErrNotFound    = errors.New("schedule: task not found")
	ErrInvalidTask = errors.New("schedule: invalid task")
)

// Store owns one day's tasks and guarantees that no two of them overlap.
// All operations are serialised; observers run after the lock is released.
type Store struct {
	mu        sync.Mutex
	tasks     []*model.Task
	observers observerSet
	logger    *log.Logger
}

func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("schedule store initialized")
	return &Store{logger: logger}
}

func (s *Store) AddObserver(o ConflictObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.observers.add(o) {
		s.logger.Debug("observer added", "observer", fmt.Sprintf("%T", o))
	}
}

func (s *Store) RemoveObserver(o ConflictObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.observers.remove(o) {
		s.logger.Debug("observer removed", "observer", fmt.Sprintf("%T", o))
	}
}

// ClearObservers drops every observer, including ones RemoveObserver cannot
// match.
func (s *Store) ClearObservers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.observers.items)
	s.observers.items = nil
	s.logger.Debug("observers cleared", "count", n)
}

func (s *Store) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers.items)
}

// Insert adds task unless it overlaps an existing one. On overlap the first
// conflicting task in store order is reported to observers and returned in a
// *ConflictError.
func (s *Store) Insert(task model.Task) error {
	if strings.TrimSpace(task.Description) == "" {
		s.logger.Error("attempted to add task without description")
		return fmt.Errorf("%w: description is required", ErrInvalidTask)
	}
	if !model.IsEndAfterStart(task.Start, task.End) {
		s.logger.Error("attempted to add task with invalid interval", "task", task.Description, "start", task.Start, "end", task.End)
		return fmt.Errorf("%w: %s - %s", ErrInvalidTask, task.Start, task.End)
	}

	s.mu.Lock()
	if existing := s.findConflict(&task); existing != nil {
		conflict := &ConflictError{
			Message:   "Task conflicts with existing task: " + existing.Description,
			Candidate: task,
			Existing:  *existing,
		}
		observers := s.observers.snapshot()
		s.mu.Unlock()
		s.reportConflict(observers, conflict)
		return conflict
	}

	stored := task
	s.tasks = append(s.tasks, &stored)
	s.mu.Unlock()

	s.logger.Info("task added", "task", task.Description, "start", task.Start, "end", task.End)
	return nil
}

func (s *Store) Remove(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(description)
	if i < 0 {
		s.logger.Warn("task not found for removal", "task", description)
		return fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(description))
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Info("task removed", "task", removed.Description)
	return nil
}

// Edit reschedules the task named by description. The new values are checked
// against every other task; on conflict the task keeps its previous start,
// end and priority and a *ConflictError is returned.
func (s *Store) Edit(description, start, end, priority string) error {
	timing, err := model.ValidateTiming(start, end, priority)
	if err != nil {
		return err
	}

	s.mu.Lock()
	i := s.indexOf(description)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("task not found for editing", "task", description)
		return fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(description))
	}

	target := s.tasks[i]
	previous := *target
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	target.Start = timing.Start
	target.End = timing.End
	target.Priority = timing.Priority

	if existing := s.findConflict(target); existing != nil {
		conflict := &ConflictError{
			Message:   "Updated task conflicts with: " + existing.Description,
			Candidate: *target,
			Existing:  *existing,
		}
		*target = previous
		s.tasks = append(s.tasks, target)
		observers := s.observers.snapshot()
		s.mu.Unlock()
		s.reportConflict(observers, conflict)
		return conflict
	}

	s.tasks = append(s.tasks, target)
	s.mu.Unlock()

	s.logger.Info("task edited", "task", target.Description, "start", target.Start, "end", target.End, "priority", target.Priority)
	return nil
}

// MarkCompleted sets the completed flag. Timing is unchanged so no overlap
// check runs.
func (s *Store) MarkCompleted(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(description)
	if i < 0 {
		s.logger.Warn("task not found to mark as completed", "task", description)
		return fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(description))
	}
	s.tasks[i].Completed = true
	s.logger.Info("task marked as completed", "task", s.tasks[i].Description)
	return nil
}

// Find returns a copy of the task named by description.
func (s *Store) Find(description string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(description)
	if i < 0 {
		return model.Task{}, false
	}
	return *s.tasks[i], true
}

// All returns the tasks in store order.
func (s *Store) All() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyTasks(func(model.Task) bool { return true })
}

// ListSortedByStart returns every task ordered by start time; ties keep
// store order.
func (s *Store) ListSortedByStart() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.copyTasks(func(model.Task) bool { return true })
	sortByStart(out)
	return out
}

// ListByPriority returns the tasks with the given priority sorted by start.
// A blank or unknown priority yields an empty list.
func (s *Store) ListByPriority(priority string) []model.Task {
	p, err := model.ParsePriority(priority)
	if err != nil {
		return []model.Task{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.copyTasks(func(t model.Task) bool { return strings.EqualFold(string(t.Priority), string(p)) })
	sortByStart(out)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Clear drops every task without notifying observers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.logger.Info("all tasks cleared")
}

func (s *Store) findConflict(candidate *model.Task) *model.Task {
	for _, existing := range s.tasks {
		if candidate.Overlaps(existing) {
			return existing
		}
	}
	return nil
}

func (s *Store) indexOf(description string) int {
	if strings.TrimSpace(description) == "" {
		return -1
	}
	for i, t := range s.tasks {
		if t.Matches(description) {
			return i
		}
	}
	return -1
}

func (s *Store) copyTasks(keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(*t) {
			out = append(out, *t)
		}
	}
	return out
}

func (s *Store) reportConflict(observers []ConflictObserver, conflict *ConflictError) {
	s.logger.Warn(conflict.Message, "candidate", conflict.Candidate.String(), "existing", conflict.Existing.String())
	notify(s.logger, observers, conflict.Message, conflict.Existing)
}

func sortByStart(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].StartMinutes() < tasks[j].StartMinutes()
	})
}
