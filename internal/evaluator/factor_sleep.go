package evaluator

import "mavita-score/internal/models"

var sleepWindowTable = table[models.SleepWindow]{
	{models.SleepBetweenSevenAndEight, 0},
	{models.SleepBetweenSixAndSeven, 2},
	{models.SleepMoreThanEight, 2},
	{models.SleepLessThanSix, 4},
}

var sleepDifficultyTable = table[models.SleepDifficulty]{
	{models.SleepDifficultyRarely, 0},
	{models.SleepDifficultySometimes, 2},
	{models.SleepDifficultyFrequently, 4},
}

var nightAwakeningTable = table[models.NightAwakeningFrequency]{
	{models.AwakeningRarely, 0},
	{models.AwakeningSometimes, 2},
	{models.AwakeningAlmostEveryDay, 4},
}

var wakeUpMoodTable = table[models.WakeUpMood]{
	{models.WakeUpMoodNo, 0},
	{models.WakeUpMoodSometimes, 2},
	{models.WakeUpMoodFrequently, 4},
}

// SleepWindowForHours 由平均睡眠小时数推导区间：<6, [6,7), [7,8], >8
func SleepWindowForHours(hours float64) models.SleepWindow {
	switch {
	case hours < 6:
		return models.SleepLessThanSix
	case hours < 7:
		return models.SleepBetweenSixAndSeven
	case hours <= 8:
		return models.SleepBetweenSevenAndEight
	default:
		return models.SleepMoreThanEight
	}
}

// scoreSleepHours 优先使用区间；未填区间但有小时数时按小时数推导
func scoreSleepHours(in *models.RawHealthInput, _ models.Date) (int, error) {
	window := in.AverageSleepWindow
	if window == nil && in.AverageSleepHours != nil {
		hours := *in.AverageSleepHours
		if msg := models.CheckSleepHours(hours); msg != "" {
			return 0, outOfRange(models.FactorSleepHours, "averageSleepHours", hours, msg)
		}
		derived := SleepWindowForHours(hours)
		window = &derived
	}
	return sleepWindowTable.lookup(models.FactorSleepHours, "averageSleepWindow", window)
}

func scoreSleepDifficulty(in *models.RawHealthInput, _ models.Date) (int, error) {
	return sleepDifficultyTable.lookup(models.FactorSleepDifficulty, "sleepDifficulty", in.SleepDifficulty)
}

func scoreNightAwakening(in *models.RawHealthInput, _ models.Date) (int, error) {
	return nightAwakeningTable.lookup(models.FactorNightAwakening, "nightAwakeningFrequency", in.NightAwakeningFrequency)
}

func scoreWakeUpMood(in *models.RawHealthInput, _ models.Date) (int, error) {
	return wakeUpMoodTable.lookup(models.FactorWakeUpMood, "wakeUpMood", in.WakeUpMood)
}
