// Package calendar converts recurring weekly (weekday, time-of-day) anchors between a local
// frame at a fixed UTC offset and the canonical UTC frame.
//
// All conversions work on integer week-seconds and never consult the real date, so results
// do not depend on DST transitions or on when the code runs.
package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone names resolve on hosts without /usr/share/zoneinfo
)

const (
	SecondsPerDay  = 24 * 60 * 60
	SecondsPerWeek = 7 * SecondsPerDay

	// MinOffsetMinutes and MaxOffsetMinutes bound real-world UTC offsets (UTC-12 to UTC+14).
	MinOffsetMinutes = -12 * 60
	MaxOffsetMinutes = 14 * 60
)

// ValidateOffset returns ErrInvalidOffset when minutes falls outside [-720, 840].
func ValidateOffset(minutes int) error {
	if minutes < MinOffsetMinutes || minutes > MaxOffsetMinutes {
		return fmt.Errorf("%w: %d minutes", ErrInvalidOffset, minutes)
	}
	return nil
}

// ToUTC converts a local weekday and time observed at offsetMinutes east of UTC into the
// UTC weekday and time of the same instant.
func ToUTC(local time.Weekday, t TimeOfDay, offsetMinutes int) (time.Weekday, TimeOfDay) {
	return shift(local, t, -offsetMinutes*60)
}

// ToLocal is the inverse of ToUTC.
func ToLocal(utc time.Weekday, t TimeOfDay, offsetMinutes int) (time.Weekday, TimeOfDay) {
	return shift(utc, t, offsetMinutes*60)
}

func shift(d time.Weekday, t TimeOfDay, deltaSeconds int) (time.Weekday, TimeOfDay) {
	total := int(d)*SecondsPerDay + int(t) + deltaSeconds
	total %= SecondsPerWeek
	if total < 0 {
		total += SecondsPerWeek
	}
	return time.Weekday(total / SecondsPerDay), TimeOfDay(total % SecondsPerDay)
}

// WeekSeconds returns the position of (d, t) within a Sunday-based week. Useful as a sort key.
func WeekSeconds(d time.Weekday, t TimeOfDay) int {
	return int(d)*SecondsPerDay + int(t)
}

// OffsetAt returns the offset of loc from UTC, in minutes east, at the given instant.
func OffsetAt(loc *time.Location, at time.Time) int {
	_, secs := at.In(loc).Zone()
	return secs / 60
}

// ResolveOffset loads an IANA zone such as "America/New_York" and returns its offset at the
// given instant.
func ResolveOffset(zone string, at time.Time) (int, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown time zone %q", ErrInvalidOffset, zone)
	}
	return OffsetAt(loc, at), nil
}
