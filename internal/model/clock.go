package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minute-of-day slots; valid minutes are [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

var ErrInvalidTimeFormat = errors.New("model: invalid time format, use HH:MM (24-hour)")

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// IsValidTimeFormat reports whether s, once trimmed, is a 24-hour HH:MM time.
// The hour may be written with a single digit ("9:30").
func IsValidTimeFormat(s string) bool {
	return clockPattern.MatchString(strings.TrimSpace(s))
}

// ToMinutes converts an HH:MM time to minutes after midnight.
func ToMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty time", ErrInvalidTimeFormat)
	}
	parts := clockPattern.FindStringSubmatch(trimmed)
	if parts == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hours, _ := strconv.Atoi(parts[1])
	minutes, _ := strconv.Atoi(parts[2])
	return hours*60 + minutes, nil
}

// FromMinutes formats a minute-of-day count as zero-padded HH:MM.
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NormalizeTime rewrites a valid time in canonical two-digit form.
func NormalizeTime(s string) (string, error) {
	m, err := ToMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(m), nil
}

// IsEndAfterStart reports whether both times are valid and end is strictly
// later than start. Equal or malformed times are both "not after".
func IsEndAfterStart(start, end string) bool {
	s, err := ToMinutes(start)
	if err != nil {
		return false
	}
	e, err := ToMinutes(end)
	if err != nil {
		return false
	}
	return e > s
}

// clockMinutes is ToMinutes for times already validated by the factory;
// malformed input maps to -1.
func clockMinutes(s string) int {
	m, err := ToMinutes(s)
	if err != nil {
		return -1
	}
	return m
}
