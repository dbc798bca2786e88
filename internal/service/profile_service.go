package service

import (
	"context"
	"fmt"
	"time"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
	"mavita-score/internal/repository"

	"go.uber.org/zap"
)

// ProfileService 个人资料服务接口
type ProfileService interface {
	// Upsert 校验并保存当前用户的资料
	Upsert(ctx context.Context, req UpsertProfileRequest) (*domain.Profile, error)
	// Get 读取当前用户的资料
	Get(ctx context.Context, userUUID string) (*domain.Profile, error)
}

type profileService struct {
	profiles repository.ProfilesRepository
	cache    *IndicatorCache
	now      func() time.Time
	logger   *zap.Logger
}

// NewProfileService 创建个人资料服务
func NewProfileService(profiles repository.ProfilesRepository, cache *IndicatorCache, now func() time.Time, logger *zap.Logger) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		profiles: profiles,
		cache:    cache,
		now:      now,
		logger:   logger,
	}
}

// ============================================
// Request/Response DTOs
// ============================================

// UpsertProfileRequest POST /api/user-profiles
type UpsertProfileRequest struct {
	UserUUID        string                  `json:"-"`
	BirthDate       *models.Date            `json:"birthDate"`
	Weight          *float64                `json:"weight"`
	Height          *float64                `json:"height"`
	Sex             *models.BiologicalSex   `json:"sex"`
	LgbtqiaStatus   *models.LgbtqiaStatus   `json:"lgbtqiaStatus"`
	PregnancyStatus *models.PregnancyStatus `json:"pregnancyStatus"`
}

// ============================================
// Service Implementation
// ============================================

func (s *profileService) Upsert(ctx context.Context, req UpsertProfileRequest) (*domain.Profile, error) {
	if s.profiles == nil {
		return nil, ErrStorageDisabled
	}
	profile := &domain.Profile{
		UserUUID:        req.UserUUID,
		BirthDate:       req.BirthDate,
		Weight:          req.Weight,
		Height:          req.Height,
		Sex:             req.Sex,
		LgbtqiaStatus:   req.LgbtqiaStatus,
		PregnancyStatus: req.PregnancyStatus,
	}
	if errs := profile.Validate(models.DateOf(s.now())); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	saved, err := s.profiles.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	s.cache.Invalidate(ctx, req.UserUUID)

	s.logger.Info("Profile saved", zap.String("user_uuid", req.UserUUID))
	return saved, nil
}

func (s *profileService) Get(ctx context.Context, userUUID string) (*domain.Profile, error) {
	if s.profiles == nil {
		return nil, ErrStorageDisabled
	}
	return s.profiles.GetProfile(ctx, userUUID)
}
