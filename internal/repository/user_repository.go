package repository

import (
	"context"
	"errors"
	"time"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int) (*model.User, error)

	// Transaction methods
	FindByIDTx(ctx context.Context, tx pgx.Tx, id int) (*model.User, error)
	FindFirstAdmin(ctx context.Context, tx pgx.Tx) (*model.User, error)
	CreditWallet(ctx context.Context, tx pgx.Tx, id int, amount decimal.Decimal) error
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

const userColumns = `id, name, email, phone, role, wallet_balance, custom_host_fee_percentage, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		user      model.User
		customFee decimal.NullDecimal
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.WalletBalance,
		&customFee,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if customFee.Valid {
		user.CustomHostFeePercentage = &customFee.Decimal
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepositoryImpl) FindByIDTx(ctx context.Context, tx pgx.Tx, id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(tx.QueryRow(ctx, query, id))
}

// FindFirstAdmin id 最小的 ADMIN，未設定 treasury 帳戶時使用
func (r *UserRepositoryImpl) FindFirstAdmin(ctx context.Context, tx pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id LIMIT 1`
	return scanUser(tx.QueryRow(ctx, query, model.RoleAdmin))
}

// CreditWallet 原子性加值，本流程不做扣款
func (r *UserRepositoryImpl) CreditWallet(ctx context.Context, tx pgx.Tx, id int, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.ErrInvalidInput
	}

	query := `
		UPDATE users
		SET wallet_balance = wallet_balance + $1, updated_at = $2
		WHERE id = $3
	`

	result, err := tx.Exec(ctx, query, amount, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
