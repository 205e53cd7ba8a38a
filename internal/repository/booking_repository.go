package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	FindByOrderID(ctx context.Context, orderID string) (*model.Booking, error)

	// Transaction methods
	FindByOrderIDWithLock(ctx context.Context, tx pgx.Tx, orderID string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, order_id, user_id, event_id, package_id, referrer_id,
		ticket_count, total_amount, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID,
		&b.OrderID,
		&b.UserID,
		&b.EventID,
		&b.PackageID,
		&b.ReferrerID,
		&b.TicketCount,
		&b.TotalAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepositoryImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`
	return scanBooking(r.pool.QueryRow(ctx, query, orderID))
}

// FindByOrderIDWithLock 鎖住 booking 列直到交易結束，序列化同一筆訂單的並行結算
func (r *BookingRepositoryImpl) FindByOrderIDWithLock(ctx context.Context, tx pgx.Tx, orderID string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1 FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, query, orderID))
}

func (r *BookingRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := tx.Exec(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
