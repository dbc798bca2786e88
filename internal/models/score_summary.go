package models

// Factor 评分因子标识（封闭集合，共 19 个）
type Factor string

const (
	FactorAge                     Factor = "age"
	FactorBMI                     Factor = "bmi"
	FactorSmoking                 Factor = "smoking"
	FactorAlcoholConsumption      Factor = "alcoholConsumption"
	FactorPhysicalActivity        Factor = "physicalActivity"
	FactorDiet                    Factor = "diet"
	FactorHealthFeeling           Factor = "healthFeeling"
	FactorSleepHours              Factor = "sleepHours"
	FactorSleepDifficulty         Factor = "sleepDifficulty"
	FactorNightAwakening          Factor = "nightAwakeningFrequency"
	FactorWakeUpMood              Factor = "wakeUpMood"
	FactorAnxietyShortnessBreath  Factor = "anxietyShortnessBreath"
	FactorStressLevel             Factor = "stressLevel"
	FactorSadnessLevel            Factor = "sadnessLevel"
	FactorChronicConditions       Factor = "chronicConditions"
	FactorParentalConditions      Factor = "parentalConditions"
	FactorDiabetesSymptoms        Factor = "diabetesSymptomLevel"
	FactorHeadacheDizziness       Factor = "headacheDizzinessLevel"
	FactorPreventiveExamFrequency Factor = "preventiveExamFrequency"
)

var allFactors = []Factor{
	FactorAge,
	FactorBMI,
	FactorSmoking,
	FactorAlcoholConsumption,
	FactorPhysicalActivity,
	FactorDiet,
	FactorHealthFeeling,
	FactorSleepHours,
	FactorSleepDifficulty,
	FactorNightAwakening,
	FactorWakeUpMood,
	FactorAnxietyShortnessBreath,
	FactorStressLevel,
	FactorSadnessLevel,
	FactorChronicConditions,
	FactorParentalConditions,
	FactorDiabetesSymptoms,
	FactorHeadacheDizziness,
	FactorPreventiveExamFrequency,
}

// AllFactors 按固定顺序返回全部因子
func AllFactors() []Factor {
	out := make([]Factor, len(allFactors))
	copy(out, allFactors)
	return out
}

const (
	// PointsPerCondition 每个病史代码的分值
	PointsPerCondition = 5
	// MaxConditionCodes 除 NONE 之外可选的病史代码数量
	MaxConditionCodes = 5
	maxTablePoints    = 4
)

// MaxPoints 因子的最高分（病史类为 5 个代码 × 5 分，其余为 4 分）
func (f Factor) MaxPoints() int {
	switch f {
	case FactorChronicConditions, FactorParentalConditions:
		return PointsPerCondition * MaxConditionCodes
	default:
		return maxTablePoints
	}
}

// FactorScore 单个因子的得分
type FactorScore struct {
	Factor Factor `json:"factor"`
	Points int    `json:"points"`
}

// ScoreSummary 一次评估的全部因子得分（固定结构，每个因子恰好一项）
type ScoreSummary struct {
	AgeScore                     int `json:"ageScore"`
	BMIScore                     int `json:"bmiScore"`
	SmokingScore                 int `json:"smokingScore"`
	AlcoholConsumptionScore      int `json:"alcoholConsumptionScore"`
	PhysicalActivityScore        int `json:"physicalActivityScore"`
	DietScore                    int `json:"dietScore"`
	HealthFeelingScore           int `json:"healthFeelingScore"`
	SleepHoursScore              int `json:"sleepHoursScore"`
	SleepDifficultyScore         int `json:"sleepDifficultyScore"`
	NightAwakeningFrequencyScore int `json:"nightAwakeningFrequencyScore"`
	WakeUpMoodScore              int `json:"wakeUpMoodScore"`
	AnxietyShortnessBreathScore  int `json:"anxietyShortnessBreathScore"`
	StressLevelScore             int `json:"stressLevelScore"`
	SadnessLevelScore            int `json:"sadnessLevelScore"`
	ChronicConditionScore        int `json:"chronicConditionScore"`
	ParentalConditionsScore      int `json:"parentalConditionsScore"`
	DiabetesSymptomLevelScore    int `json:"diabetesSymptomLevelScore"`
	HeadacheDizzinessLevelScore  int `json:"headacheDizzinessLevelScore"`
	PreventiveExamFrequencyScore int `json:"preventiveExamFrequencyScore"`
}

func (s *ScoreSummary) field(f Factor) *int {
	switch f {
	case FactorAge:
		return &s.AgeScore
	case FactorBMI:
		return &s.BMIScore
	case FactorSmoking:
		return &s.SmokingScore
	case FactorAlcoholConsumption:
		return &s.AlcoholConsumptionScore
	case FactorPhysicalActivity:
		return &s.PhysicalActivityScore
	case FactorDiet:
		return &s.DietScore
	case FactorHealthFeeling:
		return &s.HealthFeelingScore
	case FactorSleepHours:
		return &s.SleepHoursScore
	case FactorSleepDifficulty:
		return &s.SleepDifficultyScore
	case FactorNightAwakening:
		return &s.NightAwakeningFrequencyScore
	case FactorWakeUpMood:
		return &s.WakeUpMoodScore
	case FactorAnxietyShortnessBreath:
		return &s.AnxietyShortnessBreathScore
	case FactorStressLevel:
		return &s.StressLevelScore
	case FactorSadnessLevel:
		return &s.SadnessLevelScore
	case FactorChronicConditions:
		return &s.ChronicConditionScore
	case FactorParentalConditions:
		return &s.ParentalConditionsScore
	case FactorDiabetesSymptoms:
		return &s.DiabetesSymptomLevelScore
	case FactorHeadacheDizziness:
		return &s.HeadacheDizzinessLevelScore
	case FactorPreventiveExamFrequency:
		return &s.PreventiveExamFrequencyScore
	}
	return nil
}

// Score 读取某个因子的得分；未知因子返回 false
func (s ScoreSummary) Score(f Factor) (int, bool) {
	p := s.field(f)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set 写入某个因子的得分；未知因子返回 false
func (s *ScoreSummary) Set(f Factor, points int) bool {
	p := s.field(f)
	if p == nil {
		return false
	}
	*p = points
	return true
}

// Factors 按固定顺序列出全部因子得分
func (s ScoreSummary) Factors() []FactorScore {
	out := make([]FactorScore, 0, len(allFactors))
	for _, f := range allFactors {
		points, _ := s.Score(f)
		out = append(out, FactorScore{Factor: f, Points: points})
	}
	return out
}

// Total 全部因子得分之和
func (s ScoreSummary) Total() int {
	total := 0
	for _, fs := range s.Factors() {
		total += fs.Points
	}
	return total
}
