package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
)

// BookingRepository keeps one row per booking; the json column is the array
// of every saved snapshot, oldest first.
type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) LoadHistory(ctx context.Context, bookingID int64) ([]domain.Booking, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT json FROM bookings WHERE id = $1`, bookingID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	var history []domain.Booking
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("failed to decode booking %d history: %w", bookingID, err)
	}
	return history, nil
}

// Create inserts an empty history to obtain the id, then appends the first
// snapshot carrying that id. Both happen in one transaction.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `INSERT INTO bookings (json) VALUES ('[]'::jsonb) RETURNING id`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking row: %w", err)
	}

	booking.BookingID = id
	payload, err := json.Marshal(booking)
	if err != nil {
		return 0, fmt.Errorf("failed to encode booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx, appendSnapshotQuery, id, string(payload)); err != nil {
		return 0, fmt.Errorf("failed to append first snapshot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

const appendSnapshotQuery = `
	UPDATE bookings
	SET json = json || jsonb_build_array($2::jsonb), updated_at = NOW()
	WHERE id = $1
	`

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode booking: %w", err)
	}

	res, err := r.db.ExecContext(ctx, appendSnapshotQuery, booking.BookingID, string(payload))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// List returns the current snapshot of each booking, newest booking first.
func (r *BookingRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Booking, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add(`json -> -1 ->> 'status' = $%d`, string(filter.Status))
	}
	if filter.Starred != nil {
		add(`COALESCE((json -> -1 ->> 'starred')::boolean, false) = $%d`, *filter.Starred)
	}
	if filter.From != "" {
		add(`json -> -1 ->> 'startDateTime' >= $%d`, filter.From)
	}
	if filter.To != "" {
		add(`json -> -1 ->> 'startDateTime' < $%d`, filter.To)
	}

	query := `SELECT id, json -> -1 FROM bookings WHERE jsonb_array_length(json) > 0`
	if len(where) > 0 {
		query += " AND " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}

		var b domain.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("failed to decode booking %d: %w", id, err)
		}
		b.BookingID = id
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
