package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTaskNormalizes(t *testing.T) {
	task, err := NewTask("  Lunch  ", "12:00", "13:00", " low ")
	if err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if task.Description != "Lunch" || task.Priority != PriorityLow || task.Completed {
		t.Fatalf("unexpected task: %+v", task)
	}

	task, err = NewTaskWithDefaults("Review", "8:00", "8:30")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if task.Priority != PriorityMedium || task.Start != "08:00" || task.End != "08:30" {
		t.Fatalf("unexpected defaulted task: %+v", task)
	}
}

func TestNewTaskValidationOrder(t *testing.T) {
	long := strings.Repeat("x", MaxDescriptionLength+1)
	cases := []struct {
		name                       string
		desc, start, end, priority string
		want                       error
	}{
		{"empty description wins", "  ", "bad", "bad", "bad", ErrInvalidDescription},
		{"too long", long, "09:00", "10:00", "High", ErrInvalidDescription},
		{"bad start before bad end", "a", "9am", "nope", "bad", ErrInvalidTimeFormat},
		{"bad end", "a", "09:00", "25:00", "High", ErrInvalidTimeFormat},
		{"equal times", "a", "09:00", "09:00", "bad", ErrInvalidInterval},
		{"reversed", "a", "10:00", "09:00", "High", ErrInvalidInterval},
		{"bad priority", "a", "09:00", "10:00", "urgent", ErrInvalidPriority},
		{"blank priority", "a", "09:00", "10:00", "", ErrInvalidPriority},
	}

	for _, tc := range cases {
		_, err := NewTask(tc.desc, tc.start, tc.end, tc.priority)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestNewTaskDescriptionLimitIsInclusive(t *testing.T) {
	desc := strings.Repeat("é", MaxDescriptionLength)
	if _, err := NewTask(desc, "09:00", "10:00", "High"); err != nil {
		t.Fatalf("expected %d-character description to be accepted: %v", MaxDescriptionLength, err)
	}
}

func TestValidateTiming(t *testing.T) {
	got, err := ValidateTiming("6:00", "06:45", "HIGH")
	if err != nil {
		t.Fatalf("validate timing: %v", err)
	}
	if got.Start != "06:00" || got.End != "06:45" || got.Priority != PriorityHigh {
		t.Fatalf("unexpected timing: %+v", got)
	}
	if _, err := ValidateTiming("07:00", "06:00", "High"); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}
