package views

import (
	"strings"
	"testing"
)

func TestRenderScheduleEmpty(t *testing.T) {
	out := RenderSchedule("All tasks", nil)
	if !strings.Contains(out, "All tasks") || !strings.Contains(out, "No tasks scheduled for the day.") {
		t.Fatalf("unexpected empty schedule: %q", out)
	}
}

func TestRenderScheduleNumbersRows(t *testing.T) {
	out := RenderSchedule("All tasks", []TaskRow{
		{Text: "07:00 - 08:00: Morning Exercise [High]"},
		{Text: "09:00 - 10:00: Team Meeting [Medium] [COMPLETED]", Completed: true},
	})
	if !strings.Contains(out, "Total Tasks: 2") {
		t.Fatalf("expected total line: %q", out)
	}
	if !strings.Contains(out, "1. 07:00 - 08:00: Morning Exercise [High]") {
		t.Fatalf("expected first row: %q", out)
	}
	if !strings.Contains(out, "Team Meeting") {
		t.Fatalf("expected second row: %q", out)
	}
}

func TestRenderConflict(t *testing.T) {
	out := RenderConflict("Task conflicts with existing task: Lunch", "12:00 - 13:00: Lunch [Low]")
	for _, want := range []string{"CONFLICT DETECTED", "Task conflicts with existing task: Lunch", "12:00 - 13:00: Lunch [Low]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	out := RenderApp(AppData{
		Header:       "dayplan",
		SchedulePane: "schedule body",
		StatusLine:   "task added",
		Footer:       "enter: run",
	})
	for _, want := range []string{"dayplan", "schedule body", "task added", "enter: run"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if RenderMarkdown("   ", "dark") != "" {
		t.Fatal("expected empty output for blank markdown")
	}
	if out := RenderMarkdown("# Help", "notty"); !strings.Contains(out, "Help") {
		t.Fatalf("expected rendered heading, got %q", out)
	}
}
