package preference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	hours map[string][]int
}

func newMemRepository() *memRepository {
	return &memRepository{hours: make(map[string][]int)}
}

func (r *memRepository) Get(_ context.Context, userID string) ([]int, error) {
	return r.hours[userID], nil
}

func (r *memRepository) Set(_ context.Context, userID string, hours []int) error {
	r.hours[userID] = hours
	return nil
}

func TestSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Sorted And Deduplicated", func(t *testing.T) {
		svc := NewService(newMemRepository())

		p, err := svc.Set(ctx, "u1", []int{17, 9, 9, 6, 17})

		require.NoError(t, err)
		assert.Equal(t, []int{6, 9, 17}, p.Hours)
	})

	t.Run("Out Of Range Hour Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.Set(ctx, "u1", []int{9, 24})
		assert.ErrorIs(t, err, ErrInvalidHour)

		_, err = svc.Set(ctx, "u1", []int{-1})
		assert.ErrorIs(t, err, ErrInvalidHour)
	})

	t.Run("Empty Set Allowed", func(t *testing.T) {
		svc := NewService(newMemRepository())

		p, err := svc.Set(ctx, "u1", nil)

		require.NoError(t, err)
		assert.Empty(t, p.Hours)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Unset User Has No Preference", func(t *testing.T) {
		svc := NewService(newMemRepository())

		p, err := svc.Get(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", p.UserID)
		assert.Empty(t, p.Hours)
	})

	t.Run("Round Trip", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.Set(ctx, "u1", []int{7, 18})
		require.NoError(t, err)

		p, err := svc.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []int{7, 18}, p.Hours)
	})
}
