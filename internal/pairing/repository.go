package pairing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Pairing) error
	GetByID(ctx context.Context, id string) (*Pairing, error)
	List(ctx context.Context, filter Filter) ([]*Pairing, int, error)

	// Exists reports whether an active pairing links the given coach and member.
	Exists(ctx context.Context, coachID, memberID string) (bool, error)

	// Deactivate marks a pairing inactive. Inactive pairings block new
	// bookings but keep history intact.
	Deactivate(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Pairing) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.pairings").
		Columns("coach_id", "member_id", "is_active").
		Values(p.CoachID, p.MemberID, true).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create pairing query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyPaired
		}
		return fmt.Errorf("create pairing failed: %w", err)
	}
	p.IsActive = true
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Pairing, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"p.id", "p.coach_id", "c.display_name", "p.member_id", "m.display_name",
		"p.is_active", "p.created_at",
	).
		From("public.pairings p").
		Join("public.users c ON p.coach_id = c.id").
		Join("public.users m ON p.member_id = m.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pairing query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var p Pairing
	if err := row.Scan(&p.ID, &p.CoachID, &p.CoachName, &p.MemberID, &p.MemberName, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pairing failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Pairing, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"p.id", "p.coach_id", "c.display_name", "p.member_id", "m.display_name",
		"p.is_active", "p.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.pairings p").
		Join("public.users c ON p.coach_id = c.id").
		Join("public.users m ON p.member_id = m.id")

	if filter.CoachID != "" {
		query = query.Where(squirrel.Eq{"p.coach_id": filter.CoachID})
	}
	if filter.MemberID != "" {
		query = query.Where(squirrel.Eq{"p.member_id": filter.MemberID})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"p.is_active": true})
	}

	query = query.OrderBy("p.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list pairings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pairings failed: %w", err)
	}
	defer rows.Close()

	var pairings []*Pairing
	var total int

	for rows.Next() {
		var p Pairing
		if err := rows.Scan(
			&p.ID, &p.CoachID, &p.CoachName, &p.MemberID, &p.MemberName,
			&p.IsActive, &p.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan pairing failed: %w", err)
		}
		pairings = append(pairings, &p)
	}

	return pairings, total, nil
}

func (r *pgxRepository) Exists(ctx context.Context, coachID, memberID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.pairings").
		Where(squirrel.Eq{"coach_id": coachID}).
		Where(squirrel.Eq{"member_id": memberID}).
		Where(squirrel.Eq{"is_active": true})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build pairing exists query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check pairing exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) Deactivate(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.pairings").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deactivate pairing query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deactivate pairing failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
