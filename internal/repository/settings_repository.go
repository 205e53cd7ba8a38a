package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Fee setting keys stored in platform_settings.
const (
	SettingUserFeePercentage     = "user_fee_percentage"
	SettingHostFeePercentage     = "host_fee_percentage"
	SettingPlatformFeePercentage = "platform_fee_percentage"
	SettingCGSTPercentage        = "cgst_percentage"
	SettingSGSTPercentage        = "sgst_percentage"
	SettingReferralPercentage    = "referral_percentage"
)

type SettingsRepository interface {
	GetFeeSettings(ctx context.Context) (map[string]decimal.Decimal, error)
}

type SettingsRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &SettingsRepositoryImpl{pool: pool}
}

func (r *SettingsRepositoryImpl) GetFeeSettings(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT key, value
		FROM platform_settings
		WHERE key = ANY($1)
	`

	keys := []string{
		SettingUserFeePercentage,
		SettingHostFeePercentage,
		SettingPlatformFeePercentage,
		SettingCGSTPercentage,
		SettingSGSTPercentage,
		SettingReferralPercentage,
	}

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]decimal.Decimal, len(keys))
	for rows.Next() {
		var (
			key   string
			value decimal.Decimal
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}
