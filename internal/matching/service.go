package matching

import (
	"context"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/availability"
	"github.com/gymtrack/coach-booking-backend/internal/booking"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/preference"
)

// Service runs the full matching pipeline for a coach/member pair.
type Service interface {
	// Match finds up to MaxCandidates mutually free, preference-ranked
	// concrete slots for the pair. An empty result with a reason is a normal
	// negative outcome. The pipeline only reads state; nothing is booked.
	Match(ctx context.Context, coachID, memberID string, durationMinutes int) (*Result, error)
}

type service struct {
	availService availability.Service
	prefService  preference.Service
	bookService  booking.Service
	pairService  pairing.Service

	now func() time.Time
}

// NewService creates a new matching service.
func NewService(
	availService availability.Service,
	prefService preference.Service,
	bookService booking.Service,
	pairService pairing.Service,
) Service {
	return &service{
		availService: availService,
		prefService:  prefService,
		bookService:  bookService,
		pairService:  pairService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Match(ctx context.Context, coachID, memberID string, durationMinutes int) (*Result, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	paired, err := s.pairService.Exists(ctx, coachID, memberID)
	if err != nil {
		return nil, err
	}
	if !paired {
		return nil, ErrNotAssociated
	}

	now := s.now()
	// The conflict filter considers every booking from today on, even ones
	// earlier today: it reasons about weekdays, not dates.
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	coachWeek, err := s.availService.Week(ctx, coachID)
	if err != nil {
		return nil, err
	}
	memberWeek, err := s.availService.Week(ctx, memberID)
	if err != nil {
		return nil, err
	}

	coachPref, err := s.prefService.Get(ctx, coachID)
	if err != nil {
		return nil, err
	}
	memberPref, err := s.prefService.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	coachBookings, err := s.bookService.ListUpcoming(ctx, coachID, startOfDay)
	if err != nil {
		return nil, err
	}
	memberBookings, err := s.bookService.ListUpcoming(ctx, memberID, startOfDay)
	if err != nil {
		return nil, err
	}

	coachSlots := FilterConflicts(Expand(coachWeek), coachBookings)
	memberSlots := FilterConflicts(Expand(memberWeek), memberBookings)

	ranked := Rank(coachSlots, memberSlots, coachPref.Hours, memberPref.Hours)
	if len(ranked) == 0 {
		return &Result{Reason: NoSlotAvailableReason}, nil
	}

	candidates := ResolveOccurrences(ranked, coachBookings, memberBookings, durationMinutes, now)
	if len(candidates) == 0 {
		return &Result{Reason: NoSlotAvailableReason}, nil
	}

	return &Result{Candidates: candidates}, nil
}
