package domain

import "mavita-score/internal/models"

// BuildRawHealthInput 合并个人资料和问卷为评分输入（任一为 nil 时对应字段留空）
func BuildRawHealthInput(profile *Profile, health *Health) models.RawHealthInput {
	var in models.RawHealthInput
	if profile != nil {
		in.BirthDate = profile.BirthDate
		in.Weight = profile.Weight
		in.Height = profile.Height
	}
	if health == nil {
		return in
	}

	in.Smokes = health.Smokes
	in.AlcoholConsumption = health.AlcoholConsumption
	in.PhysicalActivityLevel = health.PhysicalActivityLevel
	in.DietQuality = health.DietQuality
	in.HealthFeeling = health.HealthFeeling
	in.AverageSleepWindow = health.AverageSleepWindow
	in.AverageSleepHours = health.AverageSleepHours
	in.SleepDifficulty = health.SleepDifficulty
	in.NightAwakeningFrequency = health.NightAwakeningFrequency
	in.WakeUpMood = health.WakeUpMood
	in.AnxietyShortnessBreath = health.AnxietyShortnessBreath
	in.StressLevel = health.StressLevel
	in.SadnessLevel = health.SadnessLevel
	in.ChronicConditions = health.PersonalFamilyHistory.ChronicConditions
	in.ParentalConditions = health.PersonalFamilyHistory.ParentalConditions
	in.ChronicOther = health.PersonalFamilyHistory.ChronicOther
	in.ParentalOther = health.PersonalFamilyHistory.ParentalOther
	in.DiabetesSymptomLevel = health.DiabetesSymptomLevel
	in.HeadacheDizzinessLevel = health.HeadacheDizzinessLevel
	in.PreventiveExamFrequency = health.PreventiveExamFrequency
	return in
}
