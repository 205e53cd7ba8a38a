package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SettlementLocker interface {
	// 取得：同一訂單同時只允許一個結算流程
	Acquire(ctx context.Context, orderID string, ttl time.Duration) (string, bool, error)
	// 釋放：只刪除自己持有的鎖 (使用Lua腳本確保原子性)
	Release(ctx context.Context, orderID string, token string) error
}

type RedisSettlementLockerImpl struct {
	client   *redis.Client
	newToken func() string
}

func NewRedisSettlementLocker(client *redis.Client) SettlementLocker {
	return &RedisSettlementLockerImpl{
		client:   client,
		newToken: func() string { return uuid.New().String() },
	}
}

func (l *RedisSettlementLockerImpl) getLockKey(orderID string) string {
	return fmt.Sprintf("settlement:%s:lock", orderID)
}

func (l *RedisSettlementLockerImpl) Acquire(ctx context.Context, orderID string, ttl time.Duration) (string, bool, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, l.getLockKey(orderID), token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

const releaseScript = `
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`

func (l *RedisSettlementLockerImpl) Release(ctx context.Context, orderID string, token string) error {
	return l.client.Eval(ctx, releaseScript, []string{l.getLockKey(orderID)}, token).Err()
}
