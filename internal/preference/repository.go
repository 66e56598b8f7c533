package preference

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context, userID string) ([]int, error)

	// Set replaces the user's preferred hours atomically.
	Set(ctx context.Context, userID string, hours []int) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Get(ctx context.Context, userID string) ([]int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("hour").
		From("public.preferred_hours").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("hour ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get preferred hours query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get preferred hours failed: %w", err)
	}
	defer rows.Close()

	var hours []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan preferred hour failed: %w", err)
		}
		hours = append(hours, h)
	}

	return hours, nil
}

func (r *pgxRepository) Set(ctx context.Context, userID string, hours []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set preferred hours failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	delQuery, delArgs, err := psql.Delete("public.preferred_hours").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete preferred hours query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("delete preferred hours failed: %w", err)
	}

	if len(hours) > 0 {
		insert := psql.Insert("public.preferred_hours").Columns("user_id", "hour")
		for _, h := range hours {
			insert = insert.Values(userID, h)
		}
		insQuery, insArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert preferred hours query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("insert preferred hours failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit set preferred hours failed: %w", err)
	}
	return nil
}
