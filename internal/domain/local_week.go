package domain

import (
	"time"

	"weeklyslots/internal/calendar"
)

// LocalSlot is a slot as seen from a viewer's local frame. Slot keeps the canonical record;
// selections must always be recorded against Slot.ID.
type LocalSlot struct {
	Slot           *TimeSlot          `json:"slot"`
	LocalWeekday   time.Weekday       `json:"local_weekday" swaggertype:"integer"`
	LocalTime      calendar.TimeOfDay `json:"local_time" swaggertype:"string" example:"18:00:00"`
	LocalTimeLabel string             `json:"local_time_label" example:"6:00 PM"`
	Selected       bool               `json:"selected"`
}

// LocalWeek groups local slots by local weekday. Days without slots are absent.
type LocalWeek map[time.Weekday][]LocalSlot

// Days returns the weekdays present in w, Sunday first.
func (w LocalWeek) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(w))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if len(w[d]) > 0 {
			days = append(days, d)
		}
	}
	return days
}
