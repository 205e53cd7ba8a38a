package repository

import (
	"context"
	"errors"
	"time"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	// FindByID 讀取活動與其票種
	FindByID(ctx context.Context, id int) (*model.Event, error)

	// Transaction methods
	FindByIDTx(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error)
	IncrementSoldTickets(ctx context.Context, tx pgx.Tx, id int, quantity int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	return findEventWithPackages(ctx, r.pool, id)
}

func (r *EventRepositoryImpl) FindByIDTx(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	return findEventWithPackages(ctx, tx, id)
}

func findEventWithPackages(ctx context.Context, db DBTX, id int) (*model.Event, error) {
	query := `
		SELECT id, name, host_id, sold_tickets, max_tickets, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var event model.Event
	err := db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.HostID,
		&event.SoldTickets,
		&event.MaxTickets,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	rows, err := db.Query(ctx, `SELECT id, event_id, name, price FROM packages WHERE event_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	event.Packages = make([]*model.Package, 0)
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		event.Packages = append(event.Packages, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) IncrementSoldTickets(ctx context.Context, tx pgx.Tx, id int, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	query := `
		UPDATE events
		SET sold_tickets = sold_tickets + $1, updated_at = $2
		WHERE id = $3
	`

	result, err := tx.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
