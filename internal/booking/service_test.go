package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/coach-booking-backend/internal/pairing"
)

// memRepository is an in-memory Repository whose CreateIfFree performs the
// overlap check and the insert under one lock, mirroring the serializable
// transaction of the pgx implementation.
type memRepository struct {
	mu       sync.Mutex
	nextID   int
	bookings map[string]*Booking
}

func newMemRepository() *memRepository {
	return &memRepository{bookings: make(map[string]*Booking)}
}

func (r *memRepository) CreateIfFree(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	end := b.EndTime()
	for _, existing := range r.bookings {
		if !existing.Blocks() {
			continue
		}
		sameParty := existing.CoachID == b.CoachID || existing.MemberID == b.MemberID ||
			existing.CoachID == b.MemberID || existing.MemberID == b.CoachID
		if sameParty && b.StartTime.Before(existing.EndTime()) && end.After(existing.StartTime) {
			return ErrSlotTaken
		}
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memRepository) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Booking
	for _, b := range r.bookings {
		if filter.PartyID != "" && b.CoachID != filter.PartyID && b.MemberID != filter.PartyID {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *memRepository) ListUpcoming(_ context.Context, partyID string, from time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Booking
	for _, b := range r.bookings {
		if b.CoachID != partyID && b.MemberID != partyID {
			continue
		}
		if b.Status == StatusCancelled || b.StartTime.Before(from) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memRepository) HasOverlap(_ context.Context, partyID string, start, end time.Time, excludeBookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == excludeBookingID || !b.Blocks() {
			continue
		}
		if b.CoachID != partyID && b.MemberID != partyID {
			continue
		}
		if start.Before(b.EndTime()) && end.After(b.StartTime) {
			return true, nil
		}
	}
	return false, nil
}

type stubPairing struct {
	pairing.Service
	paired bool
}

func (s *stubPairing) Exists(_ context.Context, _, _ string) (bool, error) {
	return s.paired, nil
}

func futureStart() time.Time {
	return time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
}

func scheduleRequest(start time.Time) ScheduleRequest {
	return ScheduleRequest{
		CoachID:         "coach",
		MemberID:        "member",
		StartTime:       start,
		DurationMinutes: 60,
		SessionType:     "Strength",
		Exercises:       []string{"Squats", "Deadlift"},
	}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy Path", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})

		b, err := svc.Schedule(ctx, scheduleRequest(futureStart()))

		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, StatusScheduled, b.Status)
		assert.Equal(t, "Strength", b.SessionType)
	})

	t.Run("Unpaired Parties Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: false})

		_, err := svc.Schedule(ctx, scheduleRequest(futureStart()))
		assert.ErrorIs(t, err, ErrNotAssociated)
	})

	t.Run("Past Start Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})

		_, err := svc.Schedule(ctx, scheduleRequest(time.Now().UTC().Add(-time.Hour)))
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("Non Positive Duration Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})

		req := scheduleRequest(futureStart())
		req.DurationMinutes = 0

		_, err := svc.Schedule(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Occupied Slot Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})
		start := futureStart()

		_, err := svc.Schedule(ctx, scheduleRequest(start))
		require.NoError(t, err)

		// Overlapping request 30 minutes into the existing session.
		_, err = svc.Schedule(ctx, scheduleRequest(start.Add(30*time.Minute)))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("Cancelled Slot Can Be Rebooked", func(t *testing.T) {
		repo := newMemRepository()
		svc := NewService(repo, &stubPairing{paired: true})
		start := futureStart()

		b, err := svc.Schedule(ctx, scheduleRequest(start))
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, b.ID, "member", false)
		require.NoError(t, err)

		_, err = svc.Schedule(ctx, scheduleRequest(start))
		assert.NoError(t, err)
	})

	t.Run("Concurrent Commits Race For One Slot", func(t *testing.T) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})
		start := futureStart()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Schedule(ctx, scheduleRequest(start))
			}(i)
		}
		wg.Wait()

		var taken, ok int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, ErrSlotTaken):
				taken++
			}
		}
		assert.Equal(t, 1, ok, "exactly one commit should win the slot")
		assert.Equal(t, 1, taken, "the loser should see the slot-taken conflict")
	})
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *Booking) {
		svc := NewService(newMemRepository(), &stubPairing{paired: true})
		b, err := svc.Schedule(ctx, scheduleRequest(futureStart()))
		require.NoError(t, err)
		return svc, b
	}

	t.Run("Coach Completes", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.Complete(ctx, b.ID, "coach")

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, updated.Status)
	})

	t.Run("Member Cannot Complete", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.Complete(ctx, b.ID, "member")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Either Party Cancels", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.Cancel(ctx, b.ID, "member", false)

		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)
	})

	t.Run("Outsider Cannot Cancel", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.Cancel(ctx, b.ID, "stranger", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Sysadmin Can Cancel", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.Cancel(ctx, b.ID, "admin", true)
		assert.NoError(t, err)
	})

	t.Run("Completed Is Terminal", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.Complete(ctx, b.ID, "coach")
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, b.ID, "coach", false)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = svc.Complete(ctx, b.ID, "coach")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Cancelled Is Terminal", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.Cancel(ctx, b.ID, "coach", false)
		require.NoError(t, err)

		_, err = svc.Complete(ctx, b.ID, "coach")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
