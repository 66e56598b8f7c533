package booking

import (
	"context"
	"strings"
	"time"

	"github.com/gymtrack/coach-booking-backend/internal/pairing"
)

// ScheduleRequest carries everything needed to commit a resolved candidate.
type ScheduleRequest struct {
	CoachID         string
	MemberID        string
	StartTime       time.Time
	DurationMinutes int
	SessionType     string
	Exercises       []string
	Notes           string
}

// Service defines business logic for bookings.
type Service interface {
	// Schedule commits a booking for a resolved candidate slot. The check
	// against existing bookings and the insert happen atomically; losing the
	// race surfaces as ErrSlotTaken, after which the caller should re-run
	// matching.
	Schedule(ctx context.Context, req ScheduleRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	ListUpcoming(ctx context.Context, partyID string, from time.Time) ([]*Booking, error)

	// Complete marks a scheduled session as held. Coach only.
	Complete(ctx context.Context, id string, actorID string) (*Booking, error)

	// Cancel frees a scheduled session's slot. Either participant may cancel.
	Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error)
}

type service struct {
	repo           Repository
	pairingService pairing.Service
}

// NewService creates a new booking service.
func NewService(repo Repository, pairingService pairing.Service) Service {
	return &service{
		repo:           repo,
		pairingService: pairingService,
	}
}

func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (*Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if !req.StartTime.After(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	paired, err := s.pairingService.Exists(ctx, req.CoachID, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !paired {
		return nil, ErrNotAssociated
	}

	b := &Booking{
		CoachID:         req.CoachID,
		MemberID:        req.MemberID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          StatusScheduled,
		SessionType:     strings.TrimSpace(req.SessionType),
		Exercises:       req.Exercises,
		Notes:           strings.TrimSpace(req.Notes),
	}
	if b.Exercises == nil {
		b.Exercises = []string{}
	}

	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListUpcoming(ctx context.Context, partyID string, from time.Time) ([]*Booking, error) {
	return s.repo.ListUpcoming(ctx, partyID, from)
}

func (s *service) Complete(ctx context.Context, id string, actorID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.CoachID != actorID {
		return nil, ErrPermissionDenied
	}
	if b.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}
	b.Status = StatusCompleted
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isSysAdmin && actorID != b.CoachID && actorID != b.MemberID {
		return nil, ErrPermissionDenied
	}
	if b.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	return b, nil
}
