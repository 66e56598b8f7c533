package matching

import (
	"github.com/gymtrack/coach-booking-backend/internal/availability"
)

// Expand converts one party's weekly availability into the set of abstract
// (weekday, hour) slots it covers: every whole hour in [StartHour, EndHour)
// of every available day. Unavailable days, zero-width windows and malformed
// records contribute nothing. Pure; input order is irrelevant.
func Expand(week []availability.WeeklyAvailability) map[AbstractSlot]struct{} {
	slots := make(map[AbstractSlot]struct{})
	for _, w := range week {
		if !w.WellFormed() {
			continue
		}
		for hour := w.StartHour; hour < w.EndHour; hour++ {
			slots[AbstractSlot{Day: w.Day, Hour: hour}] = struct{}{}
		}
	}
	return slots
}
