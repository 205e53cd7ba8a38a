package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"molle-settlement/internal/fee"

	"github.com/redis/go-redis/v9"
)

const feeSettingsKey = "settings:fees"

type FeeSettingsCache interface {
	// 獲取：平台預設費率，未快取時回傳 false
	Get(ctx context.Context) (fee.Percentages, bool, error)
	Set(ctx context.Context, p fee.Percentages, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type RedisFeeSettingsCacheImpl struct {
	client *redis.Client
}

func NewRedisFeeSettingsCache(client *redis.Client) FeeSettingsCache {
	return &RedisFeeSettingsCacheImpl{client: client}
}

func (c *RedisFeeSettingsCacheImpl) Get(ctx context.Context) (fee.Percentages, bool, error) {
	raw, err := c.client.Get(ctx, feeSettingsKey).Result()
	if errors.Is(err, redis.Nil) {
		return fee.Percentages{}, false, nil
	}
	if err != nil {
		return fee.Percentages{}, false, err
	}

	var p fee.Percentages
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return fee.Percentages{}, false, fmt.Errorf("invalid cached fee settings: %w", err)
	}
	return p, true, nil
}

func (c *RedisFeeSettingsCacheImpl) Set(ctx context.Context, p fee.Percentages, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal fee settings: %w", err)
	}
	return c.client.Set(ctx, feeSettingsKey, string(raw), ttl).Err()
}

func (c *RedisFeeSettingsCacheImpl) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, feeSettingsKey).Err()
}
