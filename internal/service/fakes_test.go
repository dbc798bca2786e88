package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
	"mavita-score/internal/repository"
	"mavita-score/internal/store"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

const testUser = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return f.err
}

type fakeProfiles struct {
	data map[string]*domain.Profile
	gets int
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userUUID string) (*domain.Profile, error) {
	f.gets++
	p, ok := f.data[userUUID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) UpsertProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	saved := *profile
	saved.UpdatedAt = fixedNow
	f.data[profile.UserUUID] = &saved
	return &saved, nil
}

type fakeHealths struct {
	data map[string]*domain.Health
	gets int
}

func (f *fakeHealths) GetHealth(ctx context.Context, userUUID string) (*domain.Health, error) {
	f.gets++
	h, ok := f.data[userUUID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return h, nil
}

func (f *fakeHealths) UpsertHealth(ctx context.Context, health *domain.Health) (*domain.Health, error) {
	saved := *health
	saved.UpdatedAt = fixedNow
	f.data[health.UserUUID] = &saved
	return &saved, nil
}

type fakeSummaries struct {
	saved []*domain.ScoreRecord
	err   error
}

func (f *fakeSummaries) GetScoreSummary(ctx context.Context, userUUID string) (*domain.ScoreRecord, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserUUID == userUUID {
			return f.saved[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSummaries) SaveScoreSummary(ctx context.Context, record *domain.ScoreRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, record)
	return nil
}

type fakePublisher struct {
	events []ScoreEvent
	err    error
}

func (f *fakePublisher) PublishScore(ctx context.Context, event ScoreEvent) error {
	f.events = append(f.events, event)
	return f.err
}

var errBroker = errors.New("broker unavailable")

// healthyProfile / healthyHealth 合并后每个因子都是 0 分
func healthyProfile() *domain.Profile {
	birth := models.NewDate(1996, time.March, 2)
	return &domain.Profile{
		UserUUID:        testUser,
		BirthDate:       &birth,
		Weight:          models.Ptr(70.5),
		Height:          models.Ptr(1.75),
		Sex:             models.Ptr(models.SexFemale),
		PregnancyStatus: models.Ptr(models.PregnancyNo),
	}
}

func healthyHealth() *domain.Health {
	return &domain.Health{
		UserUUID:                testUser,
		Smokes:                  models.Ptr(false),
		AlcoholConsumption:      models.Ptr(models.AlcoholNone),
		PhysicalActivityLevel:   models.Ptr(models.ActivityAlways),
		DietQuality:             models.Ptr(models.DietHealthy),
		HealthFeeling:           models.Ptr(models.FeelingYes),
		AverageSleepWindow:      models.Ptr(models.SleepBetweenSevenAndEight),
		SleepDifficulty:         models.Ptr(models.SleepDifficultyRarely),
		NightAwakeningFrequency: models.Ptr(models.AwakeningRarely),
		WakeUpMood:              models.Ptr(models.WakeUpMoodNo),
		AnxietyShortnessBreath:  models.Ptr(models.FrequencyRarely),
		StressLevel:             models.Ptr(models.FrequencyRarely),
		SadnessLevel:            models.Ptr(models.FrequencyRarely),
		PersonalFamilyHistory: domain.FamilyHistory{
			ChronicConditions:  []models.Condition{models.ConditionNone},
			ParentalConditions: []models.Condition{models.ConditionNone},
		},
		DiabetesSymptomLevel:    models.Ptr(models.SymptomNo),
		HeadacheDizzinessLevel:  models.Ptr(models.SymptomNo),
		PreventiveExamFrequency: models.Ptr(models.PreventiveExamYes),
	}
}

func healthyRequest() models.AssessmentRequest {
	in := domain.BuildRawHealthInput(healthyProfile(), healthyHealth())
	p := healthyProfile()
	return models.AssessmentRequest{
		UserProfile: &models.UserProfileInput{Sex: p.Sex, PregnancyStatus: p.PregnancyStatus},
		HealthData:  &in,
	}
}
