package repository

import (
	"context"
	"errors"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketDataRepository interface {
	FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.TicketData, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
}

type TicketDataRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketDataRepository(pool *pgxpool.Pool) TicketDataRepository {
	return &TicketDataRepositoryImpl{pool: pool}
}

func (r *TicketDataRepositoryImpl) FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.TicketData, error) {
	query := `
		SELECT id, booking_id, data, created_at
		FROM ticket_data
		WHERE booking_id = $1
	`

	var td model.TicketData
	err := tx.QueryRow(ctx, query, bookingID).Scan(
		&td.ID,
		&td.BookingID,
		&td.Data,
		&td.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketDataNotFound
		}
		return nil, err
	}
	return &td, nil
}

func (r *TicketDataRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `DELETE FROM ticket_data WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketDataNotFound
	}
	return nil
}
