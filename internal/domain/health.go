package domain

import (
	"time"

	"mavita-score/internal/models"
)

// FamilyHistory 本人及父母病史（healths.personal_family_history JSONB）
type FamilyHistory struct {
	ChronicConditions  []models.Condition `json:"chronicConditions"`
	ParentalConditions []models.Condition `json:"parentalConditions"`
	ChronicOther       string             `json:"chronicOther,omitempty"`
	ParentalOther      string             `json:"parentalOther,omitempty"`
}

// Health 健康问卷答案（对应 healths 表，每个用户一行）
type Health struct {
	UserUUID string `db:"user_uuid" json:"userUuid"`

	Smokes                *bool                         `db:"smokes" json:"smokes"`
	AlcoholConsumption    *models.AlcoholConsumption    `db:"alcohol_consumption" json:"alcoholConsumption"`
	PhysicalActivityLevel *models.PhysicalActivityLevel `db:"physical_activity_level" json:"physicalActivityLevel"`
	DietQuality           *models.DietQuality           `db:"diet_quality" json:"dietQuality"`
	HealthFeeling         *models.HealthFeeling         `db:"health_feeling" json:"healthFeeling"`

	AverageSleepWindow      *models.SleepWindow             `db:"average_sleep_window" json:"averageSleepWindow,omitempty"`
	AverageSleepHours       *float64                        `db:"average_sleep_hours" json:"averageSleepHours,omitempty"`
	SleepDifficulty         *models.SleepDifficulty         `db:"sleep_difficulty" json:"sleepDifficulty"`
	NightAwakeningFrequency *models.NightAwakeningFrequency `db:"night_awakening_frequency" json:"nightAwakeningFrequency"`
	WakeUpMood              *models.WakeUpMood              `db:"wake_up_mood" json:"wakeUpMood"`

	AnxietyShortnessBreath *models.Frequency `db:"anxiety_shortness_breath" json:"anxietyShortnessBreath"`
	StressLevel            *models.Frequency `db:"stress_level" json:"stressLevel"`
	SadnessLevel           *models.Frequency `db:"sadness_level" json:"sadnessLevel"`

	PersonalFamilyHistory FamilyHistory `db:"personal_family_history" json:"personalFamilyHistory"`

	DiabetesSymptomLevel    *models.SymptomLevel            `db:"diabetes_symptom_level" json:"diabetesSymptomLevel"`
	HeadacheDizzinessLevel  *models.SymptomLevel            `db:"headache_dizziness_level" json:"headacheDizzinessLevel"`
	PreventiveExamFrequency *models.PreventiveExamFrequency `db:"preventive_exam_frequency" json:"preventiveExamFrequency"`

	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate 校验问卷答案（全部必填，睡眠区间/小时数二选一）
func (h *Health) Validate() []models.FieldError {
	in := BuildRawHealthInput(nil, h)
	return in.ValidateAnswers()
}
