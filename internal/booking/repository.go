package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfFree checks both parties for overlapping non-cancelled bookings
	// and inserts the new booking as one serializable unit. It returns
	// ErrSlotTaken when a conflicting booking exists or a concurrent commit
	// wins the slot.
	CreateIfFree(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListUpcoming returns a party's non-cancelled bookings starting on or
	// after the given instant, ordered chronologically. This feeds the
	// matching pipeline.
	ListUpcoming(ctx context.Context, partyID string, from time.Time) ([]*Booking, error)

	UpdateStatus(ctx context.Context, id string, status Status) error

	// HasOverlap checks if any non-cancelled booking of the party intersects
	// the given time range. excludeBookingID ignores the booking itself.
	HasOverlap(ctx context.Context, partyID string, start, end time.Time, excludeBookingID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// overlapCond matches bookings of either given party that intersect
// [start, end) and still block the slot.
func overlapCond(coachID, memberID string, start, end time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Or{
			squirrel.Eq{"coach_id": coachID},
			squirrel.Eq{"member_id": memberID},
		},
		squirrel.NotEq{"status": string(StatusCancelled)},
		squirrel.Lt{"start_time": end},
		squirrel.Expr("start_time + make_interval(mins => duration_minutes) > ?", start),
	}
}

func (r *pgxRepository) CreateIfFree(ctx context.Context, b *Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin create booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	checkSQL, checkArgs, err := psql.Select("1").
		From("public.bookings").
		Where(overlapCond(b.CoachID, b.MemberID, b.StartTime, b.EndTime())).
		ToSql()
	if err != nil {
		return fmt.Errorf("build overlap check query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+checkSQL+")", checkArgs...).Scan(&exists); err != nil {
		return fmt.Errorf("overlap check failed: %w", err)
	}
	if exists {
		return ErrSlotTaken
	}

	insSQL, insArgs, err := psql.Insert("public.bookings").
		Columns("coach_id", "member_id", "start_time", "duration_minutes", "status", "session_type", "exercises", "notes").
		Values(b.CoachID, b.MemberID, b.StartTime, b.DurationMinutes, b.Status, b.SessionType, b.Exercises, b.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insSQL, insArgs...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapCommitErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapCommitErr(err)
	}
	return nil
}

// mapCommitErr translates concurrent-commit failures into ErrSlotTaken. A
// serialization failure means another transaction checked and inserted an
// overlapping booking first; an exclusion violation means the database-level
// overlap constraint fired.
func mapCommitErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.ExclusionViolation, pgerrcode.UniqueViolation:
			return ErrSlotTaken
		}
	}
	return fmt.Errorf("create booking failed: %w", err)
}

const bookingColumns = "b.id, b.coach_id, c.display_name, b.member_id, m.display_name, " +
	"b.start_time, b.duration_minutes, b.status, b.session_type, b.exercises, b.notes, b.created_at, b.updated_at"

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.CoachID, &b.CoachName, &b.MemberID, &b.MemberName,
		&b.StartTime, &b.DurationMinutes, &b.Status, &b.SessionType, &b.Exercises, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.users c ON b.coach_id = c.id").
		Join("public.users m ON b.member_id = m.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	return scanBooking(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings b").
		Join("public.users c ON b.coach_id = c.id").
		Join("public.users m ON b.member_id = m.id")

	if filter.CoachID != "" {
		query = query.Where(squirrel.Eq{"b.coach_id": filter.CoachID})
	}
	if filter.MemberID != "" {
		query = query.Where(squirrel.Eq{"b.member_id": filter.MemberID})
	}
	if filter.PartyID != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"b.coach_id": filter.PartyID},
			squirrel.Eq{"b.member_id": filter.PartyID},
		})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.start_time": filter.StartFrom})
	}
	if filter.StartTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.StartTo})
	}

	query = query.OrderBy("b.start_time DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListUpcoming(ctx context.Context, partyID string, from time.Time) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "coach_id", "member_id", "start_time", "duration_minutes", "status",
	).
		From("public.bookings").
		Where(squirrel.Or{
			squirrel.Eq{"coach_id": partyID},
			squirrel.Eq{"member_id": partyID},
		}).
		Where(squirrel.NotEq{"status": string(StatusCancelled)}).
		Where(squirrel.GtOrEq{"start_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list upcoming bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.CoachID, &b.MemberID, &b.StartTime, &b.DurationMinutes, &b.Status); err != nil {
			return nil, fmt.Errorf("scan upcoming booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, partyID string, start, end time.Time, excludeBookingID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(overlapCond(partyID, partyID, start, end))

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
