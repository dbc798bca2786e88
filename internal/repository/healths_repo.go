package repository

import (
	"context"

	"mavita-score/internal/domain"
)

// HealthsRepository 健康问卷Repository接口
type HealthsRepository interface {
	// GetHealth 获取用户问卷，不存在返回 ErrNotFound
	GetHealth(ctx context.Context, userUUID string) (*domain.Health, error)

	// UpsertHealth 创建或覆盖用户问卷
	UpsertHealth(ctx context.Context, health *domain.Health) (*domain.Health, error)
}
