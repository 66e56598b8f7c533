package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/coach-booking-backend/internal/booking"
)

// 2026-08-03 10:30 UTC is a Monday.
var testNow = time.Date(2026, 8, 3, 10, 30, 0, 0, time.UTC)

func rankedSlot(d time.Weekday, hour int, tier Tier) RankedSlot {
	return RankedSlot{Slot: AbstractSlot{Day: d, Hour: hour}, Tier: tier}
}

func TestResolveOccurrences(t *testing.T) {
	t.Run("Later Today Resolves To Today", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Monday, 14, TierNoPreference)}

		candidates := ResolveOccurrences(ranked, nil, nil, 60, testNow)

		require.Len(t, candidates, 1)
		assert.Equal(t, time.Date(2026, 8, 3, 14, 0, 0, 0, time.UTC), candidates[0].Start)
	})

	t.Run("Earlier Today Rolls Forward A Week", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Monday, 9, TierNoPreference)}

		candidates := ResolveOccurrences(ranked, nil, nil, 60, testNow)

		require.Len(t, candidates, 1)
		assert.Equal(t, time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC), candidates[0].Start)
	})

	t.Run("Current Hour Is Not Strictly Future", func(t *testing.T) {
		// now is 10:30; the 10:00 instance today has already started.
		ranked := []RankedSlot{rankedSlot(time.Monday, 10, TierNoPreference)}

		candidates := ResolveOccurrences(ranked, nil, nil, 60, testNow)

		require.Len(t, candidates, 1)
		assert.Equal(t, time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC), candidates[0].Start)
		assert.True(t, candidates[0].Start.After(testNow))
	})

	t.Run("Other Weekday Resolves Within Seven Days", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Sunday, 9, TierNoPreference)}

		candidates := ResolveOccurrences(ranked, nil, nil, 60, testNow)

		require.Len(t, candidates, 1)
		assert.Equal(t, time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC), candidates[0].Start)
	})

	t.Run("Exact Overlap Drops Candidate", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Tuesday, 14, TierNoPreference)}
		conflict := &booking.Booking{
			StartTime:       time.Date(2026, 8, 4, 14, 30, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          booking.StatusScheduled,
		}

		candidates := ResolveOccurrences(ranked, []*booking.Booking{conflict}, nil, 60, testNow)
		assert.Empty(t, candidates)
	})

	t.Run("Cancelled Booking Does Not Drop Candidate", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Tuesday, 14, TierNoPreference)}
		cancelled := &booking.Booking{
			StartTime:       time.Date(2026, 8, 4, 14, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          booking.StatusCancelled,
		}

		candidates := ResolveOccurrences(ranked, nil, []*booking.Booking{cancelled}, 60, testNow)
		assert.Len(t, candidates, 1)
	})

	t.Run("Booking On A Later Week Does Not Block This Week", func(t *testing.T) {
		ranked := []RankedSlot{rankedSlot(time.Tuesday, 14, TierNoPreference)}
		nextWeek := &booking.Booking{
			StartTime:       time.Date(2026, 8, 11, 14, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          booking.StatusScheduled,
		}

		candidates := ResolveOccurrences(ranked, []*booking.Booking{nextWeek}, nil, 60, testNow)

		require.Len(t, candidates, 1)
		assert.Equal(t, time.Date(2026, 8, 4, 14, 0, 0, 0, time.UTC), candidates[0].Start)
	})

	t.Run("Adjacent Bookings Do Not Overlap", func(t *testing.T) {
		// Session ends exactly when the existing booking starts.
		ranked := []RankedSlot{rankedSlot(time.Tuesday, 14, TierNoPreference)}
		adjacent := &booking.Booking{
			StartTime:       time.Date(2026, 8, 4, 15, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          booking.StatusScheduled,
		}

		candidates := ResolveOccurrences(ranked, []*booking.Booking{adjacent}, nil, 60, testNow)
		assert.Len(t, candidates, 1)
	})

	t.Run("Ordered By Tier Then Chronologically", func(t *testing.T) {
		ranked := []RankedSlot{
			rankedSlot(time.Friday, 9, TierNoPreference),
			rankedSlot(time.Wednesday, 9, TierNoPreference),
			rankedSlot(time.Saturday, 9, TierBothPrefer),
		}

		candidates := ResolveOccurrences(ranked, nil, nil, 60, testNow)

		require.Len(t, candidates, 3)
		assert.Equal(t, TierBothPrefer, candidates[0].Tier, "a better tier beats an earlier date")
		assert.Equal(t, time.Weekday(time.Saturday), candidates[0].Start.Weekday())
		assert.True(t, candidates[1].Start.Before(candidates[2].Start))
	})

	t.Run("Capped At Ten Candidates", func(t *testing.T) {
		var ranked []RankedSlot
		for d := time.Sunday; d <= time.Saturday; d++ {
			for h := 8; h < 12; h++ {
				ranked = append(ranked, rankedSlot(d, h, TierNoPreference))
			}
		}

		candidates := ResolveOccurrences(ranked, nil, nil, 30, testNow)

		require.Len(t, candidates, MaxCandidates)
		for i := 1; i < len(candidates); i++ {
			assert.True(t, candidates[i-1].Start.Before(candidates[i].Start), "same-tier candidates stay chronological")
		}
	})
}
