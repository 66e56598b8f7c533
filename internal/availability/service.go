package availability

import (
	"context"
	"time"
)

// SetDayRequest carries an update for a single weekday window.
type SetDayRequest struct {
	Day         time.Weekday
	IsAvailable bool
	StartHour   int
	EndHour     int
}

// Service defines business logic for weekly availability.
type Service interface {
	// Week returns all seven weekday records for a user, Sunday first.
	// Days the user never configured come back as the default window.
	Week(ctx context.Context, userID string) ([]WeeklyAvailability, error)

	SetDay(ctx context.Context, userID string, req SetDayRequest) (WeeklyAvailability, error)
}

type service struct {
	repo Repository
}

// NewService creates a new availability service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Week(ctx context.Context, userID string) ([]WeeklyAvailability, error) {
	stored, err := s.repo.GetWeek(ctx, userID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Weekday]WeeklyAvailability, len(stored))
	for _, w := range stored {
		byDay[w.Day] = w
	}

	week := make([]WeeklyAvailability, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if w, ok := byDay[day]; ok {
			week = append(week, w)
		} else {
			week = append(week, DefaultDay(userID, day))
		}
	}
	return week, nil
}

func (s *service) SetDay(ctx context.Context, userID string, req SetDayRequest) (WeeklyAvailability, error) {
	if req.Day < time.Sunday || req.Day > time.Saturday {
		return WeeklyAvailability{}, ErrInvalidDay
	}
	// Stored windows are validated at the edge; the matcher itself tolerates
	// malformed rows by treating them as empty.
	if req.StartHour < 0 || req.StartHour >= 24 || req.EndHour < 0 || req.EndHour >= 24 || req.StartHour > req.EndHour {
		return WeeklyAvailability{}, ErrInvalidHours
	}

	w := WeeklyAvailability{
		UserID:      userID,
		Day:         req.Day,
		IsAvailable: req.IsAvailable,
		StartHour:   req.StartHour,
		EndHour:     req.EndHour,
	}

	if err := s.repo.Upsert(ctx, w); err != nil {
		return WeeklyAvailability{}, err
	}
	return w, nil
}
