package matching

import (
	"github.com/gymtrack/coach-booking-backend/internal/booking"
)

// FilterConflicts removes every abstract slot whose weekday carries a
// blocking booking in any of the hours that booking occupies. Sessions block
// ceil(duration/60) consecutive hours from their start hour, so a 90-minute
// booking at 10:00 blocks hours 10 and 11.
//
// This pass works on recurring weekday identity, not exact dates: one booked
// Monday removes that Monday slot for every week. That is deliberately
// conservative; ResolveOccurrences re-checks surviving candidates against
// exact dates and recovers weeks that are actually free.
func FilterConflicts(slots map[AbstractSlot]struct{}, bookings []*booking.Booking) map[AbstractSlot]struct{} {
	free := make(map[AbstractSlot]struct{}, len(slots))
	for slot := range slots {
		free[slot] = struct{}{}
	}

	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		day := b.StartTime.Weekday()
		for _, hour := range occupiedHours(b) {
			delete(free, AbstractSlot{Day: day, Hour: hour})
		}
	}

	return free
}

// occupiedHours lists the whole hours a booking blocks, rounding the
// duration up so partial hours never under-block.
func occupiedHours(b *booking.Booking) []int {
	n := (b.DurationMinutes + 59) / 60
	start := b.StartTime.Hour()

	hours := make([]int, 0, n)
	for h := start; h < start+n && h < 24; h++ {
		hours = append(hours, h)
	}
	return hours
}
