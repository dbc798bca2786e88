package service

import (
	"context"
	"fmt"

	"mavita-score/internal/domain"
	"mavita-score/internal/repository"

	"go.uber.org/zap"
)

// HealthService 健康问卷服务接口
type HealthService interface {
	Upsert(ctx context.Context, health *domain.Health) (*domain.Health, error)
	Get(ctx context.Context, userUUID string) (*domain.Health, error)
}

type healthService struct {
	healths repository.HealthsRepository
	cache   *IndicatorCache
	logger  *zap.Logger
}

// NewHealthService 创建健康问卷服务
func NewHealthService(healths repository.HealthsRepository, cache *IndicatorCache, logger *zap.Logger) HealthService {
	return &healthService{
		healths: healths,
		cache:   cache,
		logger:  logger,
	}
}

// Upsert 校验并覆盖当前用户的问卷（health.UserUUID 由调用方设置）
func (s *healthService) Upsert(ctx context.Context, health *domain.Health) (*domain.Health, error) {
	if s.healths == nil {
		return nil, ErrStorageDisabled
	}
	if errs := health.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	saved, err := s.healths.UpsertHealth(ctx, health)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert health: %w", err)
	}
	s.cache.Invalidate(ctx, health.UserUUID)

	s.logger.Info("Health answers saved", zap.String("user_uuid", health.UserUUID))
	return saved, nil
}

func (s *healthService) Get(ctx context.Context, userUUID string) (*domain.Health, error) {
	if s.healths == nil {
		return nil, ErrStorageDisabled
	}
	return s.healths.GetHealth(ctx, userUUID)
}
