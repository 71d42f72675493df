package controllers

import (
	"time"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/delivery/http/helpers"
	"weeklyslots/internal/domain"
)

// LocalDay is one rendered day of a local week.
type LocalDay struct {
	Weekday time.Weekday       `json:"weekday" swaggertype:"integer" example:"0"`
	Name    string             `json:"name" example:"Sunday"`
	Slots   []domain.LocalSlot `json:"slots"`
}

// LocalWeekResponse is the success envelope for the local week endpoints.
type LocalWeekResponse struct {
	Data  LocalWeekData     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LocalWeekData lists non-empty days Sunday first, in the viewer's frame.
type LocalWeekData struct {
	OffsetMinutes int        `json:"offset_minutes" example:"-480"`
	Days          []LocalDay `json:"days"`
}

func newLocalWeekData(week domain.LocalWeek, offsetMinutes int) LocalWeekData {
	days := make([]LocalDay, 0, len(week))
	for _, d := range week.Days() {
		days = append(days, LocalDay{
			Weekday: d,
			Name:    calendar.WeekdayName(d),
			Slots:   week[d],
		})
	}
	return LocalWeekData{OffsetMinutes: offsetMinutes, Days: days}
}
