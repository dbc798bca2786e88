package models

import "slices"

// 问卷答案枚举（封闭集合）。值与前端提交的字符串保持一致。

type AlcoholConsumption string

const (
	AlcoholNone     AlcoholConsumption = "NONE"
	AlcoholWeekends AlcoholConsumption = "WEEKENDS"
	AlcoholDaily    AlcoholConsumption = "DAILY"
)

var alcoholConsumptionValues = []AlcoholConsumption{AlcoholNone, AlcoholWeekends, AlcoholDaily}

func (v AlcoholConsumption) IsValid() bool { return slices.Contains(alcoholConsumptionValues, v) }

type PhysicalActivityLevel string

const (
	ActivityAlways PhysicalActivityLevel = "ALWAYS"
	ActivityOften  PhysicalActivityLevel = "OFTEN"
	ActivityRarely PhysicalActivityLevel = "RARELY"
)

var physicalActivityValues = []PhysicalActivityLevel{ActivityAlways, ActivityOften, ActivityRarely}

func (v PhysicalActivityLevel) IsValid() bool { return slices.Contains(physicalActivityValues, v) }

type DietQuality string

const (
	DietHealthy   DietQuality = "HEALTHY"
	DietAverage   DietQuality = "AVERAGE"
	DietUnhealthy DietQuality = "UNHEALTHY"
)

var dietQualityValues = []DietQuality{DietHealthy, DietAverage, DietUnhealthy}

func (v DietQuality) IsValid() bool { return slices.Contains(dietQualityValues, v) }

type HealthFeeling string

const (
	FeelingYes       HealthFeeling = "YES"
	FeelingSometimes HealthFeeling = "SOMETIMES"
	FeelingRarely    HealthFeeling = "RARELY"
)

var healthFeelingValues = []HealthFeeling{FeelingYes, FeelingSometimes, FeelingRarely}

func (v HealthFeeling) IsValid() bool { return slices.Contains(healthFeelingValues, v) }

// SleepWindow 平均睡眠时长区间
type SleepWindow string

const (
	SleepLessThanSix          SleepWindow = "LESS_THAN_SIX"
	SleepBetweenSixAndSeven   SleepWindow = "BETWEEN_SIX_AND_SEVEN"
	SleepBetweenSevenAndEight SleepWindow = "BETWEEN_SEVEN_AND_EIGHT"
	SleepMoreThanEight        SleepWindow = "MORE_THAN_EIGHT"
)

var sleepWindowValues = []SleepWindow{SleepLessThanSix, SleepBetweenSixAndSeven, SleepBetweenSevenAndEight, SleepMoreThanEight}

func (v SleepWindow) IsValid() bool { return slices.Contains(sleepWindowValues, v) }

type SleepDifficulty string

const (
	SleepDifficultyRarely     SleepDifficulty = "RARELY"
	SleepDifficultySometimes  SleepDifficulty = "SOMETIMES"
	SleepDifficultyFrequently SleepDifficulty = "FREQUENTLY"
)

var sleepDifficultyValues = []SleepDifficulty{SleepDifficultyRarely, SleepDifficultySometimes, SleepDifficultyFrequently}

func (v SleepDifficulty) IsValid() bool { return slices.Contains(sleepDifficultyValues, v) }

type NightAwakeningFrequency string

const (
	AwakeningRarely         NightAwakeningFrequency = "RARELY"
	AwakeningSometimes      NightAwakeningFrequency = "SOMETIMES"
	AwakeningAlmostEveryDay NightAwakeningFrequency = "ALMOST_EVERY_DAY"
)

var nightAwakeningValues = []NightAwakeningFrequency{AwakeningRarely, AwakeningSometimes, AwakeningAlmostEveryDay}

func (v NightAwakeningFrequency) IsValid() bool { return slices.Contains(nightAwakeningValues, v) }

type WakeUpMood string

const (
	WakeUpMoodNo         WakeUpMood = "NO"
	WakeUpMoodSometimes  WakeUpMood = "SOMETIMES"
	WakeUpMoodFrequently WakeUpMood = "FREQUENTLY"
)

var wakeUpMoodValues = []WakeUpMood{WakeUpMoodNo, WakeUpMoodSometimes, WakeUpMoodFrequently}

func (v WakeUpMood) IsValid() bool { return slices.Contains(wakeUpMoodValues, v) }

// Frequency RARELY/SOMETIMES/YES 三档（焦虑、压力、悲伤共用）
type Frequency string

const (
	FrequencyRarely    Frequency = "RARELY"
	FrequencySometimes Frequency = "SOMETIMES"
	FrequencyYes       Frequency = "YES"
)

var frequencyValues = []Frequency{FrequencyRarely, FrequencySometimes, FrequencyYes}

func (v Frequency) IsValid() bool { return slices.Contains(frequencyValues, v) }

// SymptomLevel NO/SOMETIMES/YES 三档（糖尿病症状、头痛头晕共用）
type SymptomLevel string

const (
	SymptomNo        SymptomLevel = "NO"
	SymptomSometimes SymptomLevel = "SOMETIMES"
	SymptomYes       SymptomLevel = "YES"
)

var symptomLevelValues = []SymptomLevel{SymptomNo, SymptomSometimes, SymptomYes}

func (v SymptomLevel) IsValid() bool { return slices.Contains(symptomLevelValues, v) }

type PreventiveExamFrequency string

const (
	PreventiveExamYes       PreventiveExamFrequency = "YES"
	PreventiveExamSometimes PreventiveExamFrequency = "SOMETIMES"
	PreventiveExamNo        PreventiveExamFrequency = "NO"
)

var preventiveExamValues = []PreventiveExamFrequency{PreventiveExamYes, PreventiveExamSometimes, PreventiveExamNo}

func (v PreventiveExamFrequency) IsValid() bool { return slices.Contains(preventiveExamValues, v) }

// Condition 既往病史 / 父母病史代码
// NONE 不能与其它代码同时出现；OTHER 需要填写补充说明。
type Condition string

const (
	ConditionHighBloodPressure Condition = "HIGH_BLOOD_PRESSURE"
	ConditionDiabetes          Condition = "DIABETES"
	ConditionHighCholesterol   Condition = "HIGH_CHOLESTEROL"
	ConditionObesity           Condition = "OBESITY"
	ConditionOther             Condition = "OTHER"
	ConditionNone              Condition = "NONE"
)

var conditionValues = []Condition{
	ConditionHighBloodPressure,
	ConditionDiabetes,
	ConditionHighCholesterol,
	ConditionObesity,
	ConditionOther,
	ConditionNone,
}

func (v Condition) IsValid() bool { return slices.Contains(conditionValues, v) }

// 个人资料枚举（只存储，不参与评分）

type BiologicalSex string

const (
	SexMale        BiologicalSex = "MALE"
	SexTransMale   BiologicalSex = "TRANS_MALE"
	SexFemale      BiologicalSex = "FEMALE"
	SexTransFemale BiologicalSex = "TRANS_FEMALE"
)

var biologicalSexValues = []BiologicalSex{SexMale, SexTransMale, SexFemale, SexTransFemale}

func (v BiologicalSex) IsValid() bool { return slices.Contains(biologicalSexValues, v) }

type LgbtqiaStatus string

const (
	LgbtqiaYes LgbtqiaStatus = "YES"
	LgbtqiaNo  LgbtqiaStatus = "NO"
)

var lgbtqiaStatusValues = []LgbtqiaStatus{LgbtqiaYes, LgbtqiaNo}

func (v LgbtqiaStatus) IsValid() bool { return slices.Contains(lgbtqiaStatusValues, v) }

type PregnancyStatus string

const (
	PregnancyYes      PregnancyStatus = "YES"
	PregnancyPlanning PregnancyStatus = "PLANNING"
	PregnancyNo       PregnancyStatus = "NO"
)

var pregnancyStatusValues = []PregnancyStatus{PregnancyYes, PregnancyPlanning, PregnancyNo}

func (v PregnancyStatus) IsValid() bool { return slices.Contains(pregnancyStatusValues, v) }

// allowedValues 返回某个枚举类型的全部合法值（用于错误提示）
func allowedValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ConditionCodes 病史代码全集（含 OTHER、NONE）
func ConditionCodes() []Condition {
	out := make([]Condition, len(conditionValues))
	copy(out, conditionValues)
	return out
}
