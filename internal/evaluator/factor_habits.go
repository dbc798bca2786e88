package evaluator

import "mavita-score/internal/models"

var alcoholTable = table[models.AlcoholConsumption]{
	{models.AlcoholNone, 0},
	{models.AlcoholWeekends, 2},
	{models.AlcoholDaily, 4},
}

var physicalActivityTable = table[models.PhysicalActivityLevel]{
	{models.ActivityAlways, 0},
	{models.ActivityOften, 2},
	{models.ActivityRarely, 4},
}

var dietTable = table[models.DietQuality]{
	{models.DietHealthy, 0},
	{models.DietAverage, 2},
	{models.DietUnhealthy, 4},
}

var healthFeelingTable = table[models.HealthFeeling]{
	{models.FeelingYes, 0},
	{models.FeelingSometimes, 2},
	{models.FeelingRarely, 4},
}

var preventiveExamTable = table[models.PreventiveExamFrequency]{
	{models.PreventiveExamYes, 0},
	{models.PreventiveExamSometimes, 2},
	{models.PreventiveExamNo, 4},
}

// scoreSmoking 吸烟→4，不吸烟或未填写→0
func scoreSmoking(in *models.RawHealthInput, _ models.Date) (int, error) {
	if in.Smokes != nil && *in.Smokes {
		return 4, nil
	}
	return 0, nil
}

func scoreAlcoholConsumption(in *models.RawHealthInput, _ models.Date) (int, error) {
	return alcoholTable.lookup(models.FactorAlcoholConsumption, "alcoholConsumption", in.AlcoholConsumption)
}

func scorePhysicalActivity(in *models.RawHealthInput, _ models.Date) (int, error) {
	return physicalActivityTable.lookup(models.FactorPhysicalActivity, "physicalActivityLevel", in.PhysicalActivityLevel)
}

func scoreDiet(in *models.RawHealthInput, _ models.Date) (int, error) {
	return dietTable.lookup(models.FactorDiet, "dietQuality", in.DietQuality)
}

func scoreHealthFeeling(in *models.RawHealthInput, _ models.Date) (int, error) {
	return healthFeelingTable.lookup(models.FactorHealthFeeling, "healthFeeling", in.HealthFeeling)
}

func scorePreventiveExam(in *models.RawHealthInput, _ models.Date) (int, error) {
	return preventiveExamTable.lookup(models.FactorPreventiveExamFrequency, "preventiveExamFrequency", in.PreventiveExamFrequency)
}
