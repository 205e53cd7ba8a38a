package repository

import (
	"context"
	"errors"
	"fmt"

	"molle-settlement/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletTransactionRepository interface {
	// Record 寫入入帳紀錄；同一 booking 同一對象已入帳過時回傳 false
	Record(ctx context.Context, tx pgx.Tx, wt *model.WalletTransaction) (bool, error)
	ListByBookingID(ctx context.Context, bookingID int) ([]*model.WalletTransaction, error)
}

type WalletTransactionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewWalletTransactionRepository(pool *pgxpool.Pool) WalletTransactionRepository {
	return &WalletTransactionRepositoryImpl{pool: pool}
}

func (r *WalletTransactionRepositoryImpl) Record(ctx context.Context, tx pgx.Tx, wt *model.WalletTransaction) (bool, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, booking_id, party, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_id, party) DO NOTHING
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, wt.UserID, wt.BookingID, wt.Party, wt.Amount).Scan(&wt.ID, &wt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record wallet transaction: %w", err)
	}
	return true, nil
}

func (r *WalletTransactionRepositoryImpl) ListByBookingID(ctx context.Context, bookingID int) ([]*model.WalletTransaction, error) {
	query := `
		SELECT id, user_id, booking_id, party, amount, created_at
		FROM wallet_transactions
		WHERE booking_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.WalletTransaction
	for rows.Next() {
		var wt model.WalletTransaction
		if err := rows.Scan(&wt.ID, &wt.UserID, &wt.BookingID, &wt.Party, &wt.Amount, &wt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &wt)
	}
	return out, rows.Err()
}
