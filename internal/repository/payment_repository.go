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

type PaymentRepository interface {
	FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.Payment, error)
	MarkCompleted(ctx context.Context, tx pgx.Tx, id int, transactionID string) error
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

func (r *PaymentRepositoryImpl) FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.Payment, error) {
	query := `
		SELECT id, booking_id, amount, status, transaction_id, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var p model.Payment
	err := tx.QueryRow(ctx, query, bookingID).Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.Status,
		&p.TransactionID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepositoryImpl) MarkCompleted(ctx context.Context, tx pgx.Tx, id int, transactionID string) error {
	query := `
		UPDATE payments
		SET status = $1, transaction_id = NULLIF($2, ''), updated_at = $3
		WHERE id = $4
	`

	result, err := tx.Exec(ctx, query, model.PaymentStatusCompleted, transactionID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
