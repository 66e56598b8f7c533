package pairing

import (
	"context"

	"github.com/gymtrack/coach-booking-backend/internal/user"
)

// Service defines business logic for coach/member pairings.
type Service interface {
	Pair(ctx context.Context, coachID, memberID string) (*Pairing, error)
	GetByID(ctx context.Context, id string) (*Pairing, error)
	List(ctx context.Context, filter Filter) ([]*Pairing, int, error)
	Exists(ctx context.Context, coachID, memberID string) (bool, error)
	Unpair(ctx context.Context, id string, actorID string, isSysAdmin bool) error
}

type service struct {
	repo        Repository
	userService user.Service
}

// NewService creates a new pairing service.
func NewService(repo Repository, userService user.Service) Service {
	return &service{repo: repo, userService: userService}
}

func (s *service) Pair(ctx context.Context, coachID, memberID string) (*Pairing, error) {
	if coachID == memberID {
		return nil, ErrSelfPairing
	}

	coach, err := s.userService.GetByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if coach.Role != user.RoleCoach {
		return nil, ErrNotCoach
	}

	member, err := s.userService.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Role != user.RoleMember {
		return nil, ErrNotMember
	}

	p := &Pairing{
		CoachID:    coachID,
		CoachName:  coach.DisplayName,
		MemberID:   memberID,
		MemberName: member.DisplayName,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Pairing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Pairing, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Exists(ctx context.Context, coachID, memberID string) (bool, error) {
	return s.repo.Exists(ctx, coachID, memberID)
}

func (s *service) Unpair(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Either participant (or a system admin) may end the pairing.
	if !isSysAdmin && actorID != p.CoachID && actorID != p.MemberID {
		return ErrNotAssociated
	}

	return s.repo.Deactivate(ctx, id)
}
