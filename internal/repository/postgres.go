package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"roomfinder/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when an update or delete matches no row
var ErrNotFound = errors.New("record not found")

const roomColumns = `id, title, rent, gender, room_type, rooms, features,
			address, contact, owner_name, images, created_at`

const messColumns = `id, title, monthly_charge, gender, meal_types, features,
			address, contact, created_at`

const bookingColumns = `id, room_id, name, phone, email, message, status, created_at, updated_at`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the listing and booking tables if they don't exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id TEXT PRIMARY KEY,
			title TEXT,
			rent DOUBLE PRECISION,
			gender TEXT,
			room_type TEXT,
			rooms TEXT,
			features TEXT[],
			address TEXT,
			contact TEXT,
			owner_name TEXT,
			images TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS messes (
			id TEXT PRIMARY KEY,
			title TEXT,
			monthly_charge DOUBLE PRECISION,
			gender TEXT,
			meal_types TEXT[],
			features TEXT[],
			address TEXT,
			contact TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			room_id TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			message TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT valid_status CHECK (status IN ('pending', 'contacted', 'confirmed', 'rejected'))
		)`,
		`CREATE INDEX IF NOT EXISTS bookings_status_idx ON bookings (status, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// ListRooms returns every room listing in insertion order
func (r *PostgresRepository) ListRooms(ctx context.Context) ([]*model.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms ORDER BY created_at, id`, roomColumns)

	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

// ListMesses returns every mess listing in insertion order
func (r *PostgresRepository) ListMesses(ctx context.Context) ([]*model.Mess, error) {
	query := fmt.Sprintf(`SELECT %s FROM messes ORDER BY created_at, id`, messColumns)

	var messes []*model.Mess
	if err := r.db.SelectContext(ctx, &messes, query); err != nil {
		return nil, fmt.Errorf("failed to fetch messes: %w", err)
	}
	return messes, nil
}

// GetRoom retrieves a single room by its ID
func (r *PostgresRepository) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1`, roomColumns)
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

// CreateRoom inserts a room listing
func (r *PostgresRepository) CreateRoom(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (id, title, rent, gender, room_type, rooms, features,
			address, contact, owner_name, images, created_at)
		VALUES (:id, :title, :rent, :gender, :room_type, :rooms, :features,
			:address, :contact, :owner_name, :images, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// DeleteRoom removes a room listing
func (r *PostgresRepository) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return expectAffected(res)
}

// CreateBooking inserts a booking inquiry
func (r *PostgresRepository) CreateBooking(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (id, room_id, name, phone, email, message, status, created_at, updated_at)
		VALUES (:id, :room_id, :name, :phone, :email, :message, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListBookings returns bookings newest first, optionally filtered by status
func (r *PostgresRepository) ListBookings(ctx context.Context, status string) ([]model.Booking, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}

	if status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, status)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY created_at DESC`,
		bookingColumns, strings.Join(whereClauses, " AND "))

	bookings := []model.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus sets a booking's status and returns the updated row
func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*model.Booking, error) {
	query := fmt.Sprintf(`
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, bookingColumns)

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &booking, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
