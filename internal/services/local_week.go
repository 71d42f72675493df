package services

import (
	"sort"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/domain"
)

// ProjectToLocalWeek converts canonical UTC slots into the viewer's local frame and groups
// them by local weekday. Within a day entries are ordered by local time, then slot id.
// Days with no slots are left out of the map.
func ProjectToLocalWeek(slots []*domain.TimeSlot, viewerOffsetMinutes int) domain.LocalWeek {
	week := make(domain.LocalWeek)
	for _, slot := range slots {
		ls := localize(slot, viewerOffsetMinutes)
		week[ls.LocalWeekday] = append(week[ls.LocalWeekday], ls)
	}
	sortLocalWeek(week)
	return week
}

// ProjectSelectionsToLocalWeek is ProjectToLocalWeek for slots carrying a selection flag.
func ProjectSelectionsToLocalWeek(selections []*domain.SlotSelection, viewerOffsetMinutes int) domain.LocalWeek {
	week := make(domain.LocalWeek)
	for _, sel := range selections {
		ls := localize(sel.Slot, viewerOffsetMinutes)
		ls.Selected = sel.Selected
		week[ls.LocalWeekday] = append(week[ls.LocalWeekday], ls)
	}
	sortLocalWeek(week)
	return week
}

func localize(slot *domain.TimeSlot, offsetMinutes int) domain.LocalSlot {
	day, tod := calendar.ToLocal(slot.DayOfWeek, slot.TimeUTC, offsetMinutes)
	return domain.LocalSlot{
		Slot:           slot,
		LocalWeekday:   day,
		LocalTime:      tod,
		LocalTimeLabel: tod.Kitchen(),
	}
}

func sortLocalWeek(week domain.LocalWeek) {
	for _, entries := range week {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].LocalTime != entries[j].LocalTime {
				return entries[i].LocalTime < entries[j].LocalTime
			}
			return entries[i].Slot.ID < entries[j].Slot.ID
		})
	}
}
