package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bukutamu/internal/domain"
)

// PostgresGuestsRepository stores guests in the guests table.
type PostgresGuestsRepository struct {
	db *sql.DB
}

// NewPostgresGuestsRepository wraps db.
func NewPostgresGuestsRepository(db *sql.DB) *PostgresGuestsRepository {
	return &PostgresGuestsRepository{db: db}
}

var _ GuestsRepository = (*PostgresGuestsRepository)(nil)

const guestColumns = `
			guest_id::text,
			reg_number,
			first_name,
			last_name,
			nik,
			origin,
			position,
			bidang,
			contact_number,
			purpose,
			satisfaction,
			created_at`

func (r *PostgresGuestsRepository) InsertGuest(ctx context.Context, g *domain.Guest) error {
	if g == nil {
		return fmt.Errorf("guest is required")
	}

	query := `
		INSERT INTO guests (
			reg_number, first_name, last_name, nik, origin,
			position, bidang, contact_number, purpose, satisfaction
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING guest_id::text, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		g.RegNumber,
		g.FirstName,
		g.LastName,
		nullString(g.NationalID),
		g.Origin,
		nullString(g.Position),
		nullString(g.Department),
		g.ContactNumber,
		g.Purpose,
		nullString(g.Satisfaction),
	).Scan(&g.GuestID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}
	return nil
}

func (r *PostgresGuestsRepository) CountGuestsSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM guests WHERE created_at >= $1`,
		since,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count guests: %w", err)
	}
	return total, nil
}

func (r *PostgresGuestsRepository) ListGuestsSince(ctx context.Context, since time.Time) ([]*domain.Guest, error) {
	query := `
		SELECT` + guestColumns + `
		FROM guests
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()
	return scanGuests(rows)
}

func (r *PostgresGuestsRepository) ListGuestsInRange(ctx context.Context, start, end time.Time) ([]*domain.Guest, error) {
	query := `
		SELECT` + guestColumns + `
		FROM guests
		WHERE created_at >= $1
		  AND created_at <= $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests in range: %w", err)
	}
	defer rows.Close()
	return scanGuests(rows)
}

func scanGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		var g domain.Guest
		var nik, position, bidang, satisfaction sql.NullString
		if err := rows.Scan(
			&g.GuestID,
			&g.RegNumber,
			&g.FirstName,
			&g.LastName,
			&nik,
			&g.Origin,
			&position,
			&bidang,
			&g.ContactNumber,
			&g.Purpose,
			&satisfaction,
			&g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.NationalID = stringPtr(nik)
		g.Position = stringPtr(position)
		g.Department = stringPtr(bidang)
		g.Satisfaction = stringPtr(satisfaction)
		guests = append(guests, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}
	return guests, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	v := ns.String
	return &v
}
