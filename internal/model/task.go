package model

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority matches s case-insensitively after trimming and returns the
// canonical spelling.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// Key identifies a logical task: description compared case-insensitively,
// start time compared exactly.
type Key struct {
	Description string
	Start       string
}

func (k Key) Equal(other Key) bool {
	return k.Start == other.Start && sameDescription(k.Description, other.Description)
}

// Task is one item of the day's schedule. Start and End are normalized HH:MM.
// Fields may be assigned directly; only the factory validates them.
type Task struct {
	Description string
	Start       string
	End         string
	Priority    Priority
	Completed   bool
}

func (t Task) Key() Key {
	return Key{Description: t.Description, Start: t.Start}
}

// Matches reports whether description refers to this task.
func (t Task) Matches(description string) bool {
	return sameDescription(t.Description, description)
}

func (t Task) StartMinutes() int { return clockMinutes(t.Start) }

func (t Task) EndMinutes() int { return clockMinutes(t.End) }

// Overlaps uses half-open intervals: a task ending at 09:00 does not overlap
// one starting at 09:00.
func (t Task) Overlaps(other *Task) bool {
	if other == nil {
		return false
	}
	return t.StartMinutes() < other.EndMinutes() && t.EndMinutes() > other.StartMinutes()
}

func (t Task) String() string {
	out := fmt.Sprintf("%s - %s: %s [%s]", t.Start, t.End, t.Description, t.Priority)
	if t.Completed {
		out += " [COMPLETED]"
	}
	return out
}

func sameDescription(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
