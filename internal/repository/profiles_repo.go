package repository

import (
	"context"

	"mavita-score/internal/domain"
)

// ProfilesRepository 个人资料Repository接口
type ProfilesRepository interface {
	// GetProfile 获取用户资料，不存在返回 ErrNotFound
	GetProfile(ctx context.Context, userUUID string) (*domain.Profile, error)

	// UpsertProfile 创建或覆盖用户资料，返回写入后的记录
	UpsertProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
