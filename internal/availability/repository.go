package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// GetWeek returns the stored availability records for a user, ordered by
	// weekday. Days without a record are absent from the result.
	GetWeek(ctx context.Context, userID string) ([]WeeklyAvailability, error)

	// Upsert stores or replaces the record for (user, weekday).
	Upsert(ctx context.Context, w WeeklyAvailability) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetWeek(ctx context.Context, userID string) ([]WeeklyAvailability, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("user_id", "day_of_week", "is_available", "start_hour", "end_hour").
		From("public.weekly_availability").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get week query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get week failed: %w", err)
	}
	defer rows.Close()

	var week []WeeklyAvailability
	for rows.Next() {
		var w WeeklyAvailability
		var day int
		if err := rows.Scan(&w.UserID, &day, &w.IsAvailable, &w.StartHour, &w.EndHour); err != nil {
			return nil, fmt.Errorf("scan weekly availability failed: %w", err)
		}
		w.Day = time.Weekday(day)
		week = append(week, w)
	}

	return week, nil
}

func (r *pgxRepository) Upsert(ctx context.Context, w WeeklyAvailability) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.weekly_availability").
		Columns("user_id", "day_of_week", "is_available", "start_hour", "end_hour").
		Values(w.UserID, int(w.Day), w.IsAvailable, w.StartHour, w.EndHour).
		Suffix("ON CONFLICT (user_id, day_of_week) DO UPDATE SET is_available = EXCLUDED.is_available, start_hour = EXCLUDED.start_hour, end_hour = EXCLUDED.end_hour").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert availability query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert availability failed: %w", err)
	}
	return nil
}
