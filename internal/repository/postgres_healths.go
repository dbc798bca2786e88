package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
)

// PostgresHealthsRepository 健康问卷Repository实现
type PostgresHealthsRepository struct {
	db *sql.DB
}

// NewPostgresHealthsRepository 创建健康问卷Repository
func NewPostgresHealthsRepository(db *sql.DB) *PostgresHealthsRepository {
	return &PostgresHealthsRepository{db: db}
}

// 确保实现了接口
var _ HealthsRepository = (*PostgresHealthsRepository)(nil)

const healthColumns = `
			user_uuid::text,
			smokes,
			alcohol_consumption,
			physical_activity_level,
			diet_quality,
			health_feeling,
			average_sleep_window,
			average_sleep_hours,
			sleep_difficulty,
			night_awakening_frequency,
			wake_up_mood,
			anxiety_shortness_breath,
			stress_level,
			sadness_level,
			personal_family_history,
			diabetes_symptom_level,
			headache_dizziness_level,
			preventive_exam_frequency,
			updated_at`

func scanHealth(row rowScanner) (*domain.Health, error) {
	var h domain.Health
	var smokes sql.NullBool
	var (
		alcohol, activity, diet, feeling, sleepWindow              sql.NullString
		sleepDifficulty, awakening, mood, anxiety, stress, sadness sql.NullString
		diabetes, headache, preventive                             sql.NullString
	)
	var sleepHours sql.NullFloat64
	var history []byte

	if err := row.Scan(
		&h.UserUUID,
		&smokes,
		&alcohol,
		&activity,
		&diet,
		&feeling,
		&sleepWindow,
		&sleepHours,
		&sleepDifficulty,
		&awakening,
		&mood,
		&anxiety,
		&stress,
		&sadness,
		&history,
		&diabetes,
		&headache,
		&preventive,
		&h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if smokes.Valid {
		v := smokes.Bool
		h.Smokes = &v
	}
	h.AlcoholConsumption = enumPtr[models.AlcoholConsumption](alcohol)
	h.PhysicalActivityLevel = enumPtr[models.PhysicalActivityLevel](activity)
	h.DietQuality = enumPtr[models.DietQuality](diet)
	h.HealthFeeling = enumPtr[models.HealthFeeling](feeling)
	h.AverageSleepWindow = enumPtr[models.SleepWindow](sleepWindow)
	h.AverageSleepHours = floatPtr(sleepHours)
	h.SleepDifficulty = enumPtr[models.SleepDifficulty](sleepDifficulty)
	h.NightAwakeningFrequency = enumPtr[models.NightAwakeningFrequency](awakening)
	h.WakeUpMood = enumPtr[models.WakeUpMood](mood)
	h.AnxietyShortnessBreath = enumPtr[models.Frequency](anxiety)
	h.StressLevel = enumPtr[models.Frequency](stress)
	h.SadnessLevel = enumPtr[models.Frequency](sadness)
	h.DiabetesSymptomLevel = enumPtr[models.SymptomLevel](diabetes)
	h.HeadacheDizzinessLevel = enumPtr[models.SymptomLevel](headache)
	h.PreventiveExamFrequency = enumPtr[models.PreventiveExamFrequency](preventive)

	if len(history) > 0 {
		if err := json.Unmarshal(history, &h.PersonalFamilyHistory); err != nil {
			return nil, fmt.Errorf("failed to decode personal_family_history: %w", err)
		}
	}
	return &h, nil
}

// GetHealth 获取用户问卷
func (r *PostgresHealthsRepository) GetHealth(ctx context.Context, userUUID string) (*domain.Health, error) {
	if userUUID == "" {
		return nil, ErrNotFound
	}

	query := `
		SELECT` + healthColumns + `
		FROM healths
		WHERE user_uuid = $1
	`
	h, err := scanHealth(r.db.QueryRowContext(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("health %s: %w", userUUID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get health: %w", err)
	}
	return h, nil
}

// UpsertHealth 创建或覆盖用户问卷（ON CONFLICT (user_uuid)）
func (r *PostgresHealthsRepository) UpsertHealth(ctx context.Context, health *domain.Health) (*domain.Health, error) {
	if health == nil || health.UserUUID == "" {
		return nil, fmt.Errorf("user_uuid is required")
	}

	history, err := json.Marshal(health.PersonalFamilyHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to encode personal_family_history: %w", err)
	}
	var smokes sql.NullBool
	if health.Smokes != nil {
		smokes = sql.NullBool{Bool: *health.Smokes, Valid: true}
	}

	query := `
		INSERT INTO healths (
			user_uuid, smokes, alcohol_consumption, physical_activity_level, diet_quality,
			health_feeling, average_sleep_window, average_sleep_hours, sleep_difficulty,
			night_awakening_frequency, wake_up_mood, anxiety_shortness_breath, stress_level,
			sadness_level, personal_family_history, diabetes_symptom_level,
			headache_dizziness_level, preventive_exam_frequency, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15::jsonb, $16, $17, $18, now())
		ON CONFLICT (user_uuid) DO UPDATE SET
			smokes = EXCLUDED.smokes,
			alcohol_consumption = EXCLUDED.alcohol_consumption,
			physical_activity_level = EXCLUDED.physical_activity_level,
			diet_quality = EXCLUDED.diet_quality,
			health_feeling = EXCLUDED.health_feeling,
			average_sleep_window = EXCLUDED.average_sleep_window,
			average_sleep_hours = EXCLUDED.average_sleep_hours,
			sleep_difficulty = EXCLUDED.sleep_difficulty,
			night_awakening_frequency = EXCLUDED.night_awakening_frequency,
			wake_up_mood = EXCLUDED.wake_up_mood,
			anxiety_shortness_breath = EXCLUDED.anxiety_shortness_breath,
			stress_level = EXCLUDED.stress_level,
			sadness_level = EXCLUDED.sadness_level,
			personal_family_history = EXCLUDED.personal_family_history,
			diabetes_symptom_level = EXCLUDED.diabetes_symptom_level,
			headache_dizziness_level = EXCLUDED.headache_dizziness_level,
			preventive_exam_frequency = EXCLUDED.preventive_exam_frequency,
			updated_at = now()
		RETURNING` + healthColumns + `
	`
	h, err := scanHealth(r.db.QueryRowContext(ctx, query,
		health.UserUUID,
		smokes,
		nullEnum(health.AlcoholConsumption),
		nullEnum(health.PhysicalActivityLevel),
		nullEnum(health.DietQuality),
		nullEnum(health.HealthFeeling),
		nullEnum(health.AverageSleepWindow),
		nullFloat(health.AverageSleepHours),
		nullEnum(health.SleepDifficulty),
		nullEnum(health.NightAwakeningFrequency),
		nullEnum(health.WakeUpMood),
		nullEnum(health.AnxietyShortnessBreath),
		nullEnum(health.StressLevel),
		nullEnum(health.SadnessLevel),
		string(history),
		nullEnum(health.DiabetesSymptomLevel),
		nullEnum(health.HeadacheDizzinessLevel),
		nullEnum(health.PreventiveExamFrequency),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert health: %w", err)
	}
	return h, nil
}
