package model

import (
	"errors"
	"testing"
)

func TestIsValidTimeFormat(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "23:59", " 12:00 "}
	for _, s := range valid {
		if !IsValidTimeFormat(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "   ", "24:00", "12:60", "12-00", "1200", "12:0", "ab:cd", "123:00", "-1:00"}
	for _, s := range invalid {
		if IsValidTimeFormat(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestToMinutes(t *testing.T) {
	got, err := ToMinutes("13:45")
	if err != nil || got != 13*60+45 {
		t.Fatalf("ToMinutes(13:45) = %d, %v", got, err)
	}
	if _, err := ToMinutes(""); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat for empty input, got %v", err)
	}
	if _, err := ToMinutes("25:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat for 25:00, got %v", err)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		s := FromMinutes(m)
		back, err := ToMinutes(s)
		if err != nil {
			t.Fatalf("ToMinutes(%q): %v", s, err)
		}
		if back != m {
			t.Fatalf("round trip %d -> %q -> %d", m, s, back)
		}
		if FromMinutes(back) != s {
			t.Fatalf("FromMinutes(ToMinutes(%q)) = %q", s, FromMinutes(back))
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime(" 7:05")
	if err != nil || got != "07:05" {
		t.Fatalf("NormalizeTime = %q, %v", got, err)
	}
}

func TestIsEndAfterStart(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "10:00", true},
		{"09:00", "09:00", false},
		{"10:00", "09:00", false},
		{"bad", "10:00", false},
		{"09:00", "", false},
	}
	for _, tc := range cases {
		if got := IsEndAfterStart(tc.start, tc.end); got != tc.want {
			t.Fatalf("IsEndAfterStart(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}
