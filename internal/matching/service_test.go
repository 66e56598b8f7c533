package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/coach-booking-backend/internal/availability"
	"github.com/gymtrack/coach-booking-backend/internal/booking"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/preference"
)

type fakeAvailability struct {
	availability.Service
	weeks map[string][]availability.WeeklyAvailability
}

func (f *fakeAvailability) Week(_ context.Context, userID string) ([]availability.WeeklyAvailability, error) {
	return f.weeks[userID], nil
}

type fakePreference struct {
	preference.Service
	hours map[string][]int
}

func (f *fakePreference) Get(_ context.Context, userID string) (preference.PreferredHours, error) {
	return preference.PreferredHours{UserID: userID, Hours: f.hours[userID]}, nil
}

type fakeBooking struct {
	booking.Service
	upcoming map[string][]*booking.Booking
}

func (f *fakeBooking) ListUpcoming(_ context.Context, partyID string, _ time.Time) ([]*booking.Booking, error) {
	return f.upcoming[partyID], nil
}

type fakePairing struct {
	pairing.Service
	paired bool
}

func (f *fakePairing) Exists(_ context.Context, _, _ string) (bool, error) {
	return f.paired, nil
}

func newTestService(avail *fakeAvailability, pref *fakePreference, book *fakeBooking, pair *fakePairing) *service {
	return &service{
		availService: avail,
		prefService:  pref,
		bookService:  book,
		pairService:  pair,
		now:          func() time.Time { return testNow },
	}
}

func weekOf(days ...availability.WeeklyAvailability) []availability.WeeklyAvailability {
	return days
}

func TestMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Unpaired Parties Rejected", func(t *testing.T) {
		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{}},
			&fakePreference{hours: map[string][]int{}},
			&fakeBooking{upcoming: map[string][]*booking.Booking{}},
			&fakePairing{paired: false},
		)

		_, err := s.Match(ctx, "coach", "member", 60)
		assert.ErrorIs(t, err, ErrNotAssociated)
	})

	t.Run("Invalid Duration Rejected", func(t *testing.T) {
		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{}},
			&fakePreference{hours: map[string][]int{}},
			&fakeBooking{upcoming: map[string][]*booking.Booking{}},
			&fakePairing{paired: true},
		)

		_, err := s.Match(ctx, "coach", "member", 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("No Mutual Slot Is Not An Error", func(t *testing.T) {
		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{
				"coach":  weekOf(day(time.Monday, true, 8, 10)),
				"member": weekOf(day(time.Tuesday, true, 8, 10)),
			}},
			&fakePreference{hours: map[string][]int{}},
			&fakeBooking{upcoming: map[string][]*booking.Booking{}},
			&fakePairing{paired: true},
		)

		result, err := s.Match(ctx, "coach", "member", 60)

		require.NoError(t, err)
		assert.Empty(t, result.Candidates)
		assert.Equal(t, NoSlotAvailableReason, result.Reason)
	})

	t.Run("Fully Booked Coach Yields No Slot", func(t *testing.T) {
		week := weekOf(day(time.Monday, true, 10, 11))
		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{
				"coach": week, "member": week,
			}},
			&fakePreference{hours: map[string][]int{}},
			&fakeBooking{upcoming: map[string][]*booking.Booking{
				"coach": {bookingAt(time.Monday, 10, 60, booking.StatusScheduled)},
			}},
			&fakePairing{paired: true},
		)

		result, err := s.Match(ctx, "coach", "member", 60)

		require.NoError(t, err)
		assert.Empty(t, result.Candidates)
		assert.Equal(t, NoSlotAvailableReason, result.Reason)
	})

	t.Run("Candidates Are Ranked Future And Capped", func(t *testing.T) {
		coachWeek := weekOf(
			day(time.Monday, true, 8, 14),
			day(time.Wednesday, true, 8, 14),
			day(time.Friday, true, 8, 14),
		)
		memberWeek := weekOf(
			day(time.Monday, true, 8, 14),
			day(time.Wednesday, true, 8, 14),
			day(time.Friday, true, 8, 14),
		)

		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{
				"coach": coachWeek, "member": memberWeek,
			}},
			&fakePreference{hours: map[string][]int{
				"coach":  {9},
				"member": {9, 13},
			}},
			&fakeBooking{upcoming: map[string][]*booking.Booking{}},
			&fakePairing{paired: true},
		)

		result, err := s.Match(ctx, "coach", "member", 60)

		require.NoError(t, err)
		require.Len(t, result.Candidates, MaxCandidates)
		assert.Empty(t, result.Reason)

		for i, c := range result.Candidates {
			assert.True(t, c.Start.After(testNow), "candidate %d must be strictly future", i)
			if i > 0 {
				assert.LessOrEqual(t, result.Candidates[i-1].Tier, c.Tier)
			}
		}

		// Hour 9 is the only hour both prefer; all its occurrences come first.
		assert.Equal(t, TierBothPrefer, result.Candidates[0].Tier)
		assert.Equal(t, 9, result.Candidates[0].Slot.Hour)
	})

	t.Run("Match Does Not Book Anything", func(t *testing.T) {
		book := &fakeBooking{upcoming: map[string][]*booking.Booking{}}
		week := weekOf(day(time.Monday, true, 8, 10))
		s := newTestService(
			&fakeAvailability{weeks: map[string][]availability.WeeklyAvailability{
				"coach": week, "member": week,
			}},
			&fakePreference{hours: map[string][]int{}},
			book,
			&fakePairing{paired: true},
		)

		result, err := s.Match(ctx, "coach", "member", 60)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Candidates)
		assert.Empty(t, book.upcoming["coach"], "matching must stay read-only")
	})
}
