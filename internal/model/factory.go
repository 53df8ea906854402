package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxDescriptionLength = 200

var (
	ErrInvalidDescription = errors.New("model: invalid task description")
	ErrInvalidInterval    = errors.New("model: end time must be after start time")
	ErrInvalidPriority    = errors.New("model: priority must be High, Medium, or Low")
)

// NewTask validates raw field values and builds a Task. Rules are checked in
// a fixed order so the first violation decides the error: description, start
// format, end format, interval, priority.
func NewTask(description, start, end, priority string) (Task, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return Task{}, fmt.Errorf("%w: description is required", ErrInvalidDescription)
	}
	if n := utf8.RuneCountInString(desc); n > MaxDescriptionLength {
		return Task{}, fmt.Errorf("%w: %d characters exceeds %d", ErrInvalidDescription, n, MaxDescriptionLength)
	}

	timing, err := ValidateTiming(start, end, priority)
	if err != nil {
		return Task{}, err
	}
	timing.Description = desc
	return timing, nil
}

// NewTaskWithDefaults is NewTask with Medium priority.
func NewTaskWithDefaults(description, start, end string) (Task, error) {
	return NewTask(description, start, end, string(PriorityMedium))
}

// ValidateTiming runs every NewTask rule except the description check and
// returns a Task holding the normalized start, end and priority.
func ValidateTiming(start, end, priority string) (Task, error) {
	if !IsValidTimeFormat(start) {
		return Task{}, fmt.Errorf("%w: start %q", ErrInvalidTimeFormat, start)
	}
	if !IsValidTimeFormat(end) {
		return Task{}, fmt.Errorf("%w: end %q", ErrInvalidTimeFormat, end)
	}
	if !IsEndAfterStart(start, end) {
		return Task{}, fmt.Errorf("%w: %s - %s", ErrInvalidInterval, strings.TrimSpace(start), strings.TrimSpace(end))
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return Task{}, err
	}

	normStart, _ := NormalizeTime(start)
	normEnd, _ := NormalizeTime(end)
	return Task{Start: normStart, End: normEnd, Priority: p}, nil
}
