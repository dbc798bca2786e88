package evaluator

import "mavita-score/internal/models"

// 焦虑/压力/悲伤共用：RARELY→0, SOMETIMES→2, YES→4
var frequencyTable = table[models.Frequency]{
	{models.FrequencyRarely, 0},
	{models.FrequencySometimes, 2},
	{models.FrequencyYes, 4},
}

// 糖尿病症状/头痛头晕共用：NO→0, SOMETIMES→2, YES→4
var symptomTable = table[models.SymptomLevel]{
	{models.SymptomNo, 0},
	{models.SymptomSometimes, 2},
	{models.SymptomYes, 4},
}

func scoreAnxietyShortnessBreath(in *models.RawHealthInput, _ models.Date) (int, error) {
	return frequencyTable.lookup(models.FactorAnxietyShortnessBreath, "anxietyShortnessBreath", in.AnxietyShortnessBreath)
}

func scoreStressLevel(in *models.RawHealthInput, _ models.Date) (int, error) {
	return frequencyTable.lookup(models.FactorStressLevel, "stressLevel", in.StressLevel)
}

func scoreSadnessLevel(in *models.RawHealthInput, _ models.Date) (int, error) {
	return frequencyTable.lookup(models.FactorSadnessLevel, "sadnessLevel", in.SadnessLevel)
}

func scoreDiabetesSymptoms(in *models.RawHealthInput, _ models.Date) (int, error) {
	return symptomTable.lookup(models.FactorDiabetesSymptoms, "diabetesSymptomLevel", in.DiabetesSymptomLevel)
}

func scoreHeadacheDizziness(in *models.RawHealthInput, _ models.Date) (int, error) {
	return symptomTable.lookup(models.FactorHeadacheDizziness, "headacheDizzinessLevel", in.HeadacheDizzinessLevel)
}
