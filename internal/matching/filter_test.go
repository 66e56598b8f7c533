package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gymtrack/coach-booking-backend/internal/booking"
)

func slotsFor(d time.Weekday, hours ...int) map[AbstractSlot]struct{} {
	slots := make(map[AbstractSlot]struct{})
	for _, h := range hours {
		slots[AbstractSlot{Day: d, Hour: h}] = struct{}{}
	}
	return slots
}

func bookingAt(d time.Weekday, hour, durationMinutes int, status booking.Status) *booking.Booking {
	// 2026-08-02 is a Sunday; offset to land on the wanted weekday.
	base := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	start := base.AddDate(0, 0, int(d)).Add(time.Duration(hour) * time.Hour)
	return &booking.Booking{
		ID:              "b1",
		CoachID:         "coach",
		MemberID:        "member",
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestFilterConflicts(t *testing.T) {
	t.Run("Hour Booking Blocks One Slot", func(t *testing.T) {
		slots := slotsFor(time.Monday, 9, 10, 11)
		free := FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 60, booking.StatusScheduled),
		})

		assert.Equal(t, slotsFor(time.Monday, 9, 11), free)
	})

	t.Run("Ninety Minutes Blocks Two Hours", func(t *testing.T) {
		slots := slotsFor(time.Monday, 9, 10, 11, 12)
		free := FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 90, booking.StatusScheduled),
		})

		assert.Equal(t, slotsFor(time.Monday, 9, 12), free, "90 minutes at 10:00 should block hours 10 and 11")
	})

	t.Run("Cancelled Booking Does Not Block", func(t *testing.T) {
		slots := slotsFor(time.Monday, 10)
		free := FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 60, booking.StatusCancelled),
		})

		assert.Equal(t, slots, free)
	})

	t.Run("Completed Booking Still Blocks", func(t *testing.T) {
		slots := slotsFor(time.Monday, 10)
		free := FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 60, booking.StatusCompleted),
		})

		assert.Empty(t, free)
	})

	t.Run("Other Weekdays Untouched", func(t *testing.T) {
		slots := slotsFor(time.Monday, 10)
		for s := range slotsFor(time.Tuesday, 10) {
			slots[s] = struct{}{}
		}

		free := FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 60, booking.StatusScheduled),
		})

		assert.Equal(t, slotsFor(time.Tuesday, 10), free)
	})

	t.Run("Input Set Not Mutated", func(t *testing.T) {
		slots := slotsFor(time.Monday, 10)
		FilterConflicts(slots, []*booking.Booking{
			bookingAt(time.Monday, 10, 60, booking.StatusScheduled),
		})

		assert.Len(t, slots, 1)
	})

	t.Run("No Bookings Keeps Everything", func(t *testing.T) {
		slots := slotsFor(time.Friday, 8, 9, 10)
		assert.Equal(t, slots, FilterConflicts(slots, nil))
	})
}
