package preference

import (
	"context"
	"sort"
)

// Service defines business logic for preferred training hours.
type Service interface {
	Get(ctx context.Context, userID string) (PreferredHours, error)
	Set(ctx context.Context, userID string, hours []int) (PreferredHours, error)
}

type service struct {
	repo Repository
}

// NewService creates a new preference service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (PreferredHours, error) {
	hours, err := s.repo.Get(ctx, userID)
	if err != nil {
		return PreferredHours{}, err
	}
	return PreferredHours{UserID: userID, Hours: hours}, nil
}

func (s *service) Set(ctx context.Context, userID string, hours []int) (PreferredHours, error) {
	clean, err := normalizeHours(hours)
	if err != nil {
		return PreferredHours{}, err
	}

	if err := s.repo.Set(ctx, userID, clean); err != nil {
		return PreferredHours{}, err
	}
	return PreferredHours{UserID: userID, Hours: clean}, nil
}

// normalizeHours validates, deduplicates and sorts the given hours.
func normalizeHours(hours []int) ([]int, error) {
	seen := make(map[int]struct{}, len(hours))
	var clean []int
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, ErrInvalidHour
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		clean = append(clean, h)
	}
	sort.Ints(clean)
	return clean, nil
}
