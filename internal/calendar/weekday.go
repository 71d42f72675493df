package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrInvalidOffset  = errors.New("utc offset out of range")
)

// ValidWeekday reports whether d is one of time.Sunday..time.Saturday.
func ValidWeekday(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday
}

// ParseWeekday accepts a digit 0-6, a three-letter abbreviation or a full English day name.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		d := time.Weekday(n)
		if !ValidWeekday(d) {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, n)
		}
		return d, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayName returns the English name of d, or "" when d is out of range.
func WeekdayName(d time.Weekday) string {
	if !ValidWeekday(d) {
		return ""
	}
	return d.String()
}
