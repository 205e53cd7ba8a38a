package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner 開啟交易；*pgxpool.Pool 即滿足此介面
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}
