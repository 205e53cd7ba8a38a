package repository

import (
	"context"
	"errors"
	"fmt"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByQRCode(ctx context.Context, qrCode string) (*model.Ticket, error)
	ListByBookingID(ctx context.Context, bookingID int) ([]*model.Ticket, error)

	// Transaction methods
	CountByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (int, error)
	Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, ticket_number, qr_code, holder_name, holder_age, holder_phone,
		price, event_id, package_id, booking_id, user_id, created_at`

func scanTicket(row pgx.Row, t *model.Ticket) error {
	return row.Scan(
		&t.ID,
		&t.TicketNumber,
		&t.QRCode,
		&t.HolderName,
		&t.HolderAge,
		&t.HolderPhone,
		&t.Price,
		&t.EventID,
		&t.PackageID,
		&t.BookingID,
		&t.UserID,
		&t.CreatedAt,
	)
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (
			ticket_number, qr_code, holder_name, holder_age, holder_phone,
			price, event_id, package_id, booking_id, user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + ticketColumns

	row := tx.QueryRow(ctx, query,
		ticket.TicketNumber, ticket.QRCode, ticket.HolderName, ticket.HolderAge, ticket.HolderPhone,
		ticket.Price, ticket.EventID, ticket.PackageID, ticket.BookingID, ticket.UserID,
	)
	if err := scanTicket(row, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) CountByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE booking_id = $1`, bookingID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TicketRepositoryImpl) FindByQRCode(ctx context.Context, qrCode string) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE qr_code = $1`

	var ticket model.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, qrCode), &ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) ListByBookingID(ctx context.Context, bookingID int) ([]*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE booking_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
