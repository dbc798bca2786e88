package models

// RawHealthInput 一次自评快照（个人资料 + 健康问卷）
// 指针字段为 nil 表示未填写；分类字段未填写时对应因子记 0 分。
type RawHealthInput struct {
	BirthDate *Date    `json:"birthDate,omitempty"`
	Weight    *float64 `json:"weight,omitempty"` // kg
	Height    *float64 `json:"height,omitempty"` // m

	Smokes                *bool                  `json:"smokes,omitempty"`
	AlcoholConsumption    *AlcoholConsumption    `json:"alcoholConsumption,omitempty"`
	PhysicalActivityLevel *PhysicalActivityLevel `json:"physicalActivityLevel,omitempty"`
	DietQuality           *DietQuality           `json:"dietQuality,omitempty"`
	HealthFeeling         *HealthFeeling         `json:"healthFeeling,omitempty"`

	AverageSleepWindow      *SleepWindow             `json:"averageSleepWindow,omitempty"`
	AverageSleepHours       *float64                 `json:"averageSleepHours,omitempty"` // 小时.分钟，如 7.5
	SleepDifficulty         *SleepDifficulty         `json:"sleepDifficulty,omitempty"`
	NightAwakeningFrequency *NightAwakeningFrequency `json:"nightAwakeningFrequency,omitempty"`
	WakeUpMood              *WakeUpMood              `json:"wakeUpMood,omitempty"`

	AnxietyShortnessBreath *Frequency `json:"anxietyShortnessBreath,omitempty"`
	StressLevel            *Frequency `json:"stressLevel,omitempty"`
	SadnessLevel           *Frequency `json:"sadnessLevel,omitempty"`

	ChronicConditions  []Condition `json:"chronicConditions,omitempty"`
	ParentalConditions []Condition `json:"parentalConditions,omitempty"`
	ChronicOther       string      `json:"chronicOther,omitempty"`
	ParentalOther      string      `json:"parentalOther,omitempty"`

	DiabetesSymptomLevel    *SymptomLevel            `json:"diabetesSymptomLevel,omitempty"`
	HeadacheDizzinessLevel  *SymptomLevel            `json:"headacheDizzinessLevel,omitempty"`
	PreventiveExamFrequency *PreventiveExamFrequency `json:"preventiveExamFrequency,omitempty"`
}

// UserProfileInput 评估请求中的人口学信息（不参与评分，仅校验）
type UserProfileInput struct {
	Sex             *BiologicalSex   `json:"sex,omitempty"`
	LgbtqiaStatus   *LgbtqiaStatus   `json:"lgbtqiaStatus,omitempty"`
	PregnancyStatus *PregnancyStatus `json:"pregnancyStatus,omitempty"`
}

// AssessmentRequest POST /api/health-score 请求体
type AssessmentRequest struct {
	UserProfile *UserProfileInput `json:"userProfile"`
	HealthData  *RawHealthInput   `json:"healthData"`
}

// Ptr 返回 v 的指针（构造可选字段用）
func Ptr[T any](v T) *T {
	return &v
}
