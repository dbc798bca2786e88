package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
	"mavita-score/internal/pipeline"
	"mavita-score/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScoreService 健康评分服务接口
type ScoreService interface {
	// Assess 无状态评估：校验请求体后返回因子汇总与指标（不落库）
	Assess(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error)
	// CurrentScores 当前用户的指标：缓存 → 读取资料/问卷 → 评估 → 保存汇总 → 缓存 → 发布事件
	CurrentScores(ctx context.Context, userUUID string) ([]models.IndicatorResult, error)
}

type scoreService struct {
	pipeline  *pipeline.Pipeline
	profiles  repository.ProfilesRepository
	healths   repository.HealthsRepository
	summaries repository.ScoreSummariesRepository
	cache     *IndicatorCache
	publisher EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

// ScoreServiceDeps 评分服务依赖（除 Pipeline 外均可为 nil）
type ScoreServiceDeps struct {
	Pipeline  *pipeline.Pipeline
	Profiles  repository.ProfilesRepository
	Healths   repository.HealthsRepository
	Summaries repository.ScoreSummariesRepository
	Cache     *IndicatorCache
	Publisher EventPublisher
	Now       func() time.Time
	Logger    *zap.Logger
}

// NewScoreService 创建评分服务
func NewScoreService(deps ScoreServiceDeps) ScoreService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Pipeline == nil {
		deps.Pipeline = pipeline.New(deps.Now, deps.Logger)
	}
	return &scoreService{
		pipeline:  deps.Pipeline,
		profiles:  deps.Profiles,
		healths:   deps.Healths,
		summaries: deps.Summaries,
		cache:     deps.Cache,
		publisher: deps.Publisher,
		now:       deps.Now,
		logger:    deps.Logger,
	}
}

func (s *scoreService) Assess(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error) {
	if errs := req.Validate(models.DateOf(s.now())); len(errs) > 0 {
		return models.Assessment{}, &ValidationError{Errors: errs}
	}
	assessment, err := s.pipeline.Assess(*req.HealthData)
	if err != nil {
		return models.Assessment{}, asValidationError(err, "healthData.")
	}
	return assessment, nil
}

func (s *scoreService) CurrentScores(ctx context.Context, userUUID string) ([]models.IndicatorResult, error) {
	if s.profiles == nil || s.healths == nil {
		return nil, ErrStorageDisabled
	}
	if cached, ok := s.cache.Get(ctx, userUUID); ok {
		s.logger.Debug("Indicator cache hit", zap.String("user_uuid", userUUID))
		return cached, nil
	}

	profile, err := s.profiles.GetProfile(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("profile of user %s: %w", userUUID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	health, err := s.healths.GetHealth(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("health answers of user %s: %w", userUUID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load health answers: %w", err)
	}

	assessment, err := s.pipeline.Assess(domain.BuildRawHealthInput(profile, health))
	if err != nil {
		return nil, asValidationError(err, "")
	}

	evaluatedAt := s.now().UTC()
	if s.summaries != nil {
		record := &domain.ScoreRecord{
			UserUUID:    userUUID,
			Summary:     assessment.Summary,
			Total:       assessment.Summary.Total(),
			EvaluatedAt: evaluatedAt,
		}
		if err := s.summaries.SaveScoreSummary(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save score summary: %w", err)
		}
	}
	s.cache.Put(ctx, userUUID, assessment.Indicators)

	if s.publisher != nil {
		event := ScoreEvent{
			EventID:     uuid.NewString(),
			UserUUID:    userUUID,
			Summary:     assessment.Summary,
			Indicators:  assessment.Indicators,
			EvaluatedAt: evaluatedAt,
		}
		if err := s.publisher.PublishScore(ctx, event); err != nil {
			s.logger.Warn("Failed to publish score event", zap.String("user_uuid", userUUID), zap.Error(err))
		}
	}

	s.logger.Info("Scores evaluated",
		zap.String("user_uuid", userUUID),
		zap.Int("total", assessment.Summary.Total()),
		zap.Int("indicators", len(assessment.Indicators)),
	)
	return assessment.Indicators, nil
}
