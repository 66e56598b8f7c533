package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gymtrack/coach-booking-backend/internal/availability"
)

func day(d time.Weekday, available bool, start, end int) availability.WeeklyAvailability {
	return availability.WeeklyAvailability{
		UserID:      "u1",
		Day:         d,
		IsAvailable: available,
		StartHour:   start,
		EndHour:     end,
	}
}

func TestExpand(t *testing.T) {
	t.Run("Single Day Window", func(t *testing.T) {
		slots := Expand([]availability.WeeklyAvailability{
			day(time.Monday, true, 8, 12),
		})

		assert.Len(t, slots, 4)
		for _, h := range []int{8, 9, 10, 11} {
			assert.Contains(t, slots, AbstractSlot{Day: time.Monday, Hour: h})
		}
		assert.NotContains(t, slots, AbstractSlot{Day: time.Monday, Hour: 12}, "end hour is exclusive")
	})

	t.Run("Full Default Week", func(t *testing.T) {
		var week []availability.WeeklyAvailability
		for d := time.Sunday; d <= time.Saturday; d++ {
			week = append(week, availability.DefaultDay("u1", d))
		}

		slots := Expand(week)
		assert.Len(t, slots, 7*(availability.DefaultEndHour-availability.DefaultStartHour))
	})

	t.Run("Unavailable Days Contribute Nothing", func(t *testing.T) {
		var week []availability.WeeklyAvailability
		for d := time.Sunday; d <= time.Saturday; d++ {
			week = append(week, day(d, false, 8, 20))
		}

		slots := Expand(week)
		assert.Empty(t, slots)
	})

	t.Run("Zero Width Window", func(t *testing.T) {
		slots := Expand([]availability.WeeklyAvailability{
			day(time.Tuesday, true, 10, 10),
		})
		assert.Empty(t, slots)
	})

	t.Run("Malformed Rows Yield No Slots", func(t *testing.T) {
		slots := Expand([]availability.WeeklyAvailability{
			day(time.Monday, true, 12, 8),  // inverted window
			day(time.Tuesday, true, -1, 5), // out of range
			day(time.Friday, true, 8, 25),  // out of range
		})
		assert.Empty(t, slots)
	})

	t.Run("Input Order Is Irrelevant", func(t *testing.T) {
		a := []availability.WeeklyAvailability{
			day(time.Monday, true, 8, 10),
			day(time.Wednesday, true, 14, 16),
		}
		b := []availability.WeeklyAvailability{
			day(time.Wednesday, true, 14, 16),
			day(time.Monday, true, 8, 10),
		}

		assert.Equal(t, Expand(a), Expand(b))
	})

	t.Run("Idempotent", func(t *testing.T) {
		week := []availability.WeeklyAvailability{
			day(time.Monday, true, 8, 12),
			day(time.Saturday, true, 9, 11),
		}
		assert.Equal(t, Expand(week), Expand(week))
	})
}
