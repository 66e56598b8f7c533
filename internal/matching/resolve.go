package matching

import (
	"sort"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/booking"
)

// ResolveOccurrences binds ranked abstract slots to their next concrete
// calendar occurrence and runs the authoritative overlap check against both
// parties' real bookings at minute precision. Candidates whose next
// occurrence collides are dropped; a recurring slot suppressed by
// FilterConflicts for one booked week never reaches here, but a slot that
// survived is still verified against the exact dates. The result is ordered
// by tier, then chronologically, and capped at MaxCandidates.
//
// Every returned start time is strictly after now: a slot whose instance
// today has already passed rolls forward exactly seven days.
func ResolveOccurrences(ranked []RankedSlot, coachBookings, memberBookings []*booking.Booking, durationMinutes int, now time.Time) []Candidate {
	duration := time.Duration(durationMinutes) * time.Minute

	var candidates []Candidate
	for _, rs := range ranked {
		start := nextOccurrence(rs.Slot, now)
		end := start.Add(duration)

		if overlapsAny(start, end, coachBookings) || overlapsAny(start, end, memberBookings) {
			continue
		}

		candidates = append(candidates, Candidate{
			Start: start,
			Slot:  rs.Slot,
			Tier:  rs.Tier,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Tier != candidates[j].Tier {
			return candidates[i].Tier < candidates[j].Tier
		}
		return candidates[i].Start.Before(candidates[j].Start)
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	return candidates
}

// nextOccurrence returns the first instant strictly after now that falls on
// the slot's weekday at the slot's hour.
func nextOccurrence(slot AbstractSlot, now time.Time) time.Time {
	daysAhead := (int(slot.Day) - int(now.Weekday()) + 7) % 7

	year, month, day := now.Date()
	t := time.Date(year, month, day+daysAhead, slot.Hour, 0, 0, 0, now.Location())

	if !t.After(now) {
		t = t.AddDate(0, 0, 7)
	}
	return t
}

// overlapsAny reports whether [start, end) intersects any blocking booking.
func overlapsAny(start, end time.Time, bookings []*booking.Booking) bool {
	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		if start.Before(b.EndTime()) && end.After(b.StartTime) {
			return true
		}
	}
	return false
}
