package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	rows map[time.Weekday]WeeklyAvailability
}

func newMemRepository() *memRepository {
	return &memRepository{rows: make(map[time.Weekday]WeeklyAvailability)}
}

func (r *memRepository) GetWeek(_ context.Context, userID string) ([]WeeklyAvailability, error) {
	var result []WeeklyAvailability
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w, ok := r.rows[d]; ok && w.UserID == userID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *memRepository) Upsert(_ context.Context, w WeeklyAvailability) error {
	r.rows[w.Day] = w
	return nil
}

func TestWeek(t *testing.T) {
	ctx := context.Background()

	t.Run("Unconfigured User Gets Default Week", func(t *testing.T) {
		svc := NewService(newMemRepository())

		week, err := svc.Week(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, week, 7)
		for i, w := range week {
			assert.Equal(t, time.Weekday(i), w.Day)
			assert.True(t, w.IsAvailable)
			assert.Equal(t, DefaultStartHour, w.StartHour)
			assert.Equal(t, DefaultEndHour, w.EndHour)
		}
	})

	t.Run("Stored Days Override Defaults", func(t *testing.T) {
		repo := newMemRepository()
		svc := NewService(repo)

		_, err := svc.SetDay(ctx, "u1", SetDayRequest{
			Day:         time.Monday,
			IsAvailable: false,
		})
		require.NoError(t, err)

		week, err := svc.Week(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, week, 7)

		assert.False(t, week[time.Monday].IsAvailable)
		assert.True(t, week[time.Tuesday].IsAvailable, "untouched days keep the default")
	})
}

func TestSetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Window Stored", func(t *testing.T) {
		svc := NewService(newMemRepository())

		w, err := svc.SetDay(ctx, "u1", SetDayRequest{
			Day:         time.Wednesday,
			IsAvailable: true,
			StartHour:   6,
			EndHour:     9,
		})

		require.NoError(t, err)
		assert.Equal(t, time.Wednesday, w.Day)
		assert.Equal(t, 6, w.StartHour)
		assert.Equal(t, 9, w.EndHour)
	})

	t.Run("Invalid Day Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.SetDay(ctx, "u1", SetDayRequest{Day: 7, IsAvailable: true, StartHour: 8, EndHour: 10})
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("Inverted Window Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.SetDay(ctx, "u1", SetDayRequest{Day: time.Monday, IsAvailable: true, StartHour: 12, EndHour: 8})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("Out Of Range Hours Rejected", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.SetDay(ctx, "u1", SetDayRequest{Day: time.Monday, IsAvailable: true, StartHour: 8, EndHour: 24})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("Zero Width Window Allowed", func(t *testing.T) {
		svc := NewService(newMemRepository())

		w, err := svc.SetDay(ctx, "u1", SetDayRequest{Day: time.Monday, IsAvailable: true, StartHour: 10, EndHour: 10})

		require.NoError(t, err)
		assert.Equal(t, w.StartHour, w.EndHour)
	})
}
