package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mavita-score/internal/models"
	"mavita-score/internal/store"

	"go.uber.org/zap"
)

// IndicatorCache 缓存用户最近一次的指标列表（key: {prefix}{user_uuid}）
// kv 为 nil 时所有操作为空操作。
type IndicatorCache struct {
	kv     store.KV
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewIndicatorCache 创建指标缓存
func NewIndicatorCache(kv store.KV, prefix string, ttl time.Duration, logger *zap.Logger) *IndicatorCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndicatorCache{kv: kv, prefix: prefix, ttl: ttl, logger: logger}
}

func (c *IndicatorCache) key(userUUID string) string {
	return c.prefix + userUUID
}

// Get 读取缓存；未命中、缓存损坏或 Redis 故障均返回 false
func (c *IndicatorCache) Get(ctx context.Context, userUUID string) ([]models.IndicatorResult, bool) {
	if c == nil || c.kv == nil {
		return nil, false
	}
	raw, err := c.kv.Get(ctx, c.key(userUUID))
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			c.logger.Warn("Failed to read indicator cache", zap.String("user_uuid", userUUID), zap.Error(err))
		}
		return nil, false
	}
	var results []models.IndicatorResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		c.logger.Warn("Corrupted indicator cache entry", zap.String("user_uuid", userUUID), zap.Error(err))
		return nil, false
	}
	return results, true
}

// Put 写入缓存（失败只记录日志）
func (c *IndicatorCache) Put(ctx context.Context, userUUID string, results []models.IndicatorResult) {
	if c == nil || c.kv == nil {
		return
	}
	b, err := json.Marshal(results)
	if err != nil {
		c.logger.Warn("Failed to encode indicators", zap.String("user_uuid", userUUID), zap.Error(err))
		return
	}
	if err := c.kv.Set(ctx, c.key(userUUID), string(b), c.ttl); err != nil {
		c.logger.Warn("Failed to write indicator cache", zap.String("user_uuid", userUUID), zap.Error(err))
	}
}

// Invalidate 删除缓存（资料或问卷更新后调用）
func (c *IndicatorCache) Invalidate(ctx context.Context, userUUID string) {
	if c == nil || c.kv == nil {
		return
	}
	if err := c.kv.Del(ctx, c.key(userUUID)); err != nil {
		c.logger.Warn("Failed to invalidate indicator cache", zap.String("user_uuid", userUUID), zap.Error(err))
	}
}
