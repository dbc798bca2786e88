package evaluator

import (
	"time"

	"mavita-score/internal/models"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// healthyInput 每个因子都取 0 分的完整输入（30 岁以下，BMI 正常）
func healthyInput() models.RawHealthInput {
	birth := models.NewDate(1996, time.March, 2)
	return models.RawHealthInput{
		BirthDate:               &birth,
		Weight:                  models.Ptr(70.5),
		Height:                  models.Ptr(1.75),
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
		ChronicConditions:       []models.Condition{models.ConditionNone},
		ParentalConditions:      []models.Condition{models.ConditionNone},
		DiabetesSymptomLevel:    models.Ptr(models.SymptomNo),
		HeadacheDizzinessLevel:  models.Ptr(models.SymptomNo),
		PreventiveExamFrequency: models.Ptr(models.PreventiveExamYes),
	}
}
