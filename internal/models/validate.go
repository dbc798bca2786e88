package models

import (
	"fmt"
	"math"
	"strings"
)

// FieldError 字段级校验错误（HTTP 400 响应体）
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Message
}

const (
	msgRequired     = "is required"
	msgPositive     = "must be positive"
	msgNotEmpty     = "can not be empty"
	msgFutureDate   = "must not be in the future"
	msgOtherDetail  = "is required when OTHER is selected"
	maxSleepMinutes = 59
	maxSleepHours   = 24.0
)

// NoneExclusiveMessage NONE 与其它病史同时选择时的错误信息
const NoneExclusiveMessage = "'NONE' must not be selected with other conditions"

// CheckSleepHours 校验平均睡眠时长：[0,24]，小数部分折算分钟不超过 59。
// 合法返回空字符串。
func CheckSleepHours(hours float64) string {
	if math.IsNaN(hours) || hours < 0 {
		return "cannot be negative"
	}
	if hours > maxSleepHours {
		return "cannot exceed 24"
	}
	fractional := hours - math.Floor(hours)
	if int(math.Round(fractional*60)) > maxSleepMinutes {
		return fmt.Sprintf("minutes must not exceed %d", maxSleepMinutes)
	}
	return ""
}

// InvalidEnumMessage 非法枚举值提示
func InvalidEnumMessage(value string, allowed []string) string {
	return fmt.Sprintf("Invalid value '%s'. Allowed values are: [%s]", value, strings.Join(allowed, ", "))
}

type validator struct {
	prefix string
	errs   []FieldError
}

func (v *validator) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: v.prefix + field, Message: message})
}

func checkEnum[T ~string](v *validator, field string, value *T, values []T, required bool) {
	if value == nil {
		if required {
			v.add(field, msgRequired)
		}
		return
	}
	for _, allowed := range values {
		if *value == allowed {
			return
		}
	}
	v.add(field, InvalidEnumMessage(string(*value), allowedValues(values)))
}

func checkConditions(v *validator, field, otherField string, list []Condition, other string) {
	if len(list) == 0 {
		v.add(field, msgNotEmpty)
		return
	}
	hasNone, hasOther := false, false
	for _, c := range list {
		if !c.IsValid() {
			v.add(field, InvalidEnumMessage(string(c), allowedValues(conditionValues)))
			return
		}
		switch c {
		case ConditionNone:
			hasNone = true
		case ConditionOther:
			hasOther = true
		}
	}
	if hasNone && len(list) > 1 {
		v.add(field, NoneExclusiveMessage)
	}
	if hasOther && strings.TrimSpace(other) == "" {
		v.add(otherField, msgOtherDetail)
	}
}

// Validate 评估请求的边界校验（所有问卷字段必填）
// today 用于判断出生日期是否在未来。
func (in *RawHealthInput) Validate(today Date) []FieldError {
	return in.validate("", today)
}

func (in *RawHealthInput) validate(prefix string, today Date) []FieldError {
	v := &validator{prefix: prefix}
	checkBody(v, in.BirthDate, in.Weight, in.Height, today)
	in.checkAnswers(v)
	return v.errs
}

// ValidateAnswers 只校验问卷部分（不含出生日期、体重、身高）
func (in *RawHealthInput) ValidateAnswers() []FieldError {
	v := &validator{}
	in.checkAnswers(v)
	return v.errs
}

// ValidateBody 校验出生日期、体重、身高
func ValidateBody(birthDate *Date, weight, height *float64, today Date) []FieldError {
	v := &validator{}
	checkBody(v, birthDate, weight, height, today)
	return v.errs
}

func checkBody(v *validator, birthDate *Date, weight, height *float64, today Date) {
	if birthDate == nil {
		v.add("birthDate", msgRequired)
	} else if birthDate.After(today) {
		v.add("birthDate", msgFutureDate)
	}
	checkPositive(v, "weight", weight)
	checkPositive(v, "height", height)
}

func (in *RawHealthInput) checkAnswers(v *validator) {
	if in.Smokes == nil {
		v.add("smokes", msgRequired)
	}
	checkEnum(v, "alcoholConsumption", in.AlcoholConsumption, alcoholConsumptionValues, true)
	checkEnum(v, "physicalActivityLevel", in.PhysicalActivityLevel, physicalActivityValues, true)
	checkEnum(v, "dietQuality", in.DietQuality, dietQualityValues, true)
	checkEnum(v, "healthFeeling", in.HealthFeeling, healthFeelingValues, true)

	// 睡眠时长：区间或小时数至少提供一个
	checkEnum(v, "averageSleepWindow", in.AverageSleepWindow, sleepWindowValues, false)
	if in.AverageSleepHours != nil {
		if msg := CheckSleepHours(*in.AverageSleepHours); msg != "" {
			v.add("averageSleepHours", msg)
		}
	} else if in.AverageSleepWindow == nil {
		v.add("averageSleepHours", msgRequired)
	}
	checkEnum(v, "sleepDifficulty", in.SleepDifficulty, sleepDifficultyValues, true)
	checkEnum(v, "nightAwakeningFrequency", in.NightAwakeningFrequency, nightAwakeningValues, true)
	checkEnum(v, "wakeUpMood", in.WakeUpMood, wakeUpMoodValues, true)

	checkEnum(v, "anxietyShortnessBreath", in.AnxietyShortnessBreath, frequencyValues, true)
	checkEnum(v, "stressLevel", in.StressLevel, frequencyValues, true)
	checkEnum(v, "sadnessLevel", in.SadnessLevel, frequencyValues, true)

	checkConditions(v, "chronicConditions", "chronicOther", in.ChronicConditions, in.ChronicOther)
	checkConditions(v, "parentalConditions", "parentalOther", in.ParentalConditions, in.ParentalOther)

	checkEnum(v, "diabetesSymptomLevel", in.DiabetesSymptomLevel, symptomLevelValues, true)
	checkEnum(v, "headacheDizzinessLevel", in.HeadacheDizzinessLevel, symptomLevelValues, true)
	checkEnum(v, "preventiveExamFrequency", in.PreventiveExamFrequency, preventiveExamValues, true)
}

func checkPositive(v *validator, field string, value *float64) {
	if value == nil {
		v.add(field, msgRequired)
		return
	}
	if !(*value > 0) {
		v.add(field, msgPositive)
	}
}

// Validate 校验人口学信息：sex、pregnancyStatus 必填，lgbtqiaStatus 可选
func (p *UserProfileInput) Validate() []FieldError {
	return p.validate("")
}

func (p *UserProfileInput) validate(prefix string) []FieldError {
	v := &validator{prefix: prefix}
	checkEnum(v, "sex", p.Sex, biologicalSexValues, true)
	checkEnum(v, "lgbtqiaStatus", p.LgbtqiaStatus, lgbtqiaStatusValues, false)
	checkEnum(v, "pregnancyStatus", p.PregnancyStatus, pregnancyStatusValues, true)
	return v.errs
}

// Validate 校验完整评估请求
func (r *AssessmentRequest) Validate(today Date) []FieldError {
	var errs []FieldError
	if r.UserProfile == nil {
		errs = append(errs, FieldError{Field: "userProfile", Message: msgRequired})
	} else {
		errs = append(errs, r.UserProfile.validate("userProfile.")...)
	}
	if r.HealthData == nil {
		errs = append(errs, FieldError{Field: "healthData", Message: msgRequired})
	} else {
		errs = append(errs, r.HealthData.validate("healthData.", today)...)
	}
	return errs
}
