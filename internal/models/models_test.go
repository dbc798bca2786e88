package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1980-01-10"`), &d))
	assert.Equal(t, NewDate(1980, time.January, 10), d)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1980-01-10"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"10/01/1980"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`19800110`), &d))
}

func TestDate_YearsUntil(t *testing.T) {
	birth := NewDate(1980, time.June, 15)
	assert.Equal(t, 44, birth.YearsUntil(NewDate(2025, time.June, 14)))
	assert.Equal(t, 45, birth.YearsUntil(NewDate(2025, time.June, 15)))
	assert.Equal(t, 45, birth.YearsUntil(NewDate(2025, time.December, 1)))

	// DateOf 丢弃时分秒
	assert.Equal(t, NewDate(2025, time.June, 15), DateOf(time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, NewDate(2025, time.June, 15).After(DateOf(time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC))))
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, AlcoholWeekends.IsValid())
	assert.False(t, AlcoholConsumption("SOMETIMES").IsValid())
	assert.True(t, SleepBetweenSevenAndEight.IsValid())
	assert.True(t, ConditionNone.IsValid())
	assert.False(t, Condition("ASTHMA").IsValid())
	assert.Len(t, ConditionCodes(), 6)
}

func TestScoreSummary_Accessors(t *testing.T) {
	var s ScoreSummary
	for i, f := range AllFactors() {
		require.True(t, s.Set(f, i), f)
	}
	assert.False(t, s.Set(Factor("unknown"), 1))

	for i, fs := range s.Factors() {
		assert.Equal(t, AllFactors()[i], fs.Factor)
		assert.Equal(t, i, fs.Points)
	}
	assert.Equal(t, 171, s.Total()) // 0+1+...+18

	_, ok := s.Score(Factor("unknown"))
	assert.False(t, ok)
	assert.Equal(t, 25, FactorChronicConditions.MaxPoints())
	assert.Equal(t, 4, FactorSleepHours.MaxPoints())
}

func TestScoreSummary_JSONNames(t *testing.T) {
	b, err := json.Marshal(ScoreSummary{ChronicConditionScore: 10, PreventiveExamFrequencyScore: 2})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"chronicConditionScore":10`)
	assert.Contains(t, string(b), `"preventiveExamFrequencyScore":2`)
	assert.Contains(t, string(b), `"bmiScore":0`)
}

func TestCheckSleepHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, ""},
		{7.5, ""},
		{7.98, ""},
		{24, ""},
		{-0.5, "cannot be negative"},
		{24.1, "cannot exceed 24"},
		{7.995, "minutes must not exceed 59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckSleepHours(tt.hours), "hours=%v", tt.hours)
	}
}

func validInput() RawHealthInput {
	birth := NewDate(1990, time.May, 20)
	return RawHealthInput{
		BirthDate:               &birth,
		Weight:                  Ptr(70.0),
		Height:                  Ptr(1.70),
		Smokes:                  Ptr(false),
		AlcoholConsumption:      Ptr(AlcoholNone),
		PhysicalActivityLevel:   Ptr(ActivityOften),
		DietQuality:             Ptr(DietAverage),
		HealthFeeling:           Ptr(FeelingYes),
		AverageSleepHours:       Ptr(7.5),
		SleepDifficulty:         Ptr(SleepDifficultyRarely),
		NightAwakeningFrequency: Ptr(AwakeningSometimes),
		WakeUpMood:              Ptr(WakeUpMoodNo),
		AnxietyShortnessBreath:  Ptr(FrequencyRarely),
		StressLevel:             Ptr(FrequencySometimes),
		SadnessLevel:            Ptr(FrequencyRarely),
		ChronicConditions:       []Condition{ConditionNone},
		ParentalConditions:      []Condition{ConditionDiabetes, ConditionOther},
		ParentalOther:           "asma",
		DiabetesSymptomLevel:    Ptr(SymptomNo),
		HeadacheDizzinessLevel:  Ptr(SymptomSometimes),
		PreventiveExamFrequency: Ptr(PreventiveExamYes),
	}
}

var validationDay = NewDate(2025, time.June, 15)

func TestRawHealthInput_Validate(t *testing.T) {
	in := validInput()
	assert.Empty(t, in.Validate(validationDay))

	// 只给睡眠区间也可以
	in.AverageSleepHours = nil
	in.AverageSleepWindow = Ptr(SleepLessThanSix)
	assert.Empty(t, in.Validate(validationDay))
}

func TestRawHealthInput_ValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *RawHealthInput)
		want   FieldError
	}{
		{"缺少出生日期", func(in *RawHealthInput) { in.BirthDate = nil }, FieldError{"birthDate", "is required"}},
		{"未来出生日期", func(in *RawHealthInput) { in.BirthDate = Ptr(NewDate(2030, time.January, 1)) }, FieldError{"birthDate", "must not be in the future"}},
		{"体重为零", func(in *RawHealthInput) { in.Weight = Ptr(0.0) }, FieldError{"weight", "must be positive"}},
		{"缺少身高", func(in *RawHealthInput) { in.Height = nil }, FieldError{"height", "is required"}},
		{"缺少吸烟", func(in *RawHealthInput) { in.Smokes = nil }, FieldError{"smokes", "is required"}},
		{"非法枚举", func(in *RawHealthInput) { in.DietQuality = Ptr(DietQuality("GOOD")) },
			FieldError{"dietQuality", "Invalid value 'GOOD'. Allowed values are: [HEALTHY, AVERAGE, UNHEALTHY]"}},
		{"缺少睡眠", func(in *RawHealthInput) { in.AverageSleepHours = nil }, FieldError{"averageSleepHours", "is required"}},
		{"睡眠为负", func(in *RawHealthInput) { in.AverageSleepHours = Ptr(-1.0) }, FieldError{"averageSleepHours", "cannot be negative"}},
		{"空病史", func(in *RawHealthInput) { in.ChronicConditions = nil }, FieldError{"chronicConditions", "can not be empty"}},
		{"NONE 与其它同选", func(in *RawHealthInput) {
			in.ChronicConditions = []Condition{ConditionNone, ConditionObesity}
		}, FieldError{"chronicConditions", NoneExclusiveMessage}},
		{"OTHER 缺少说明", func(in *RawHealthInput) { in.ParentalOther = " " }, FieldError{"parentalOther", "is required when OTHER is selected"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := in.Validate(validationDay)
			require.Len(t, errs, 1, "%v", errs)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}

func TestRawHealthInput_ValidateAnswers(t *testing.T) {
	in := validInput()
	in.BirthDate, in.Weight, in.Height = nil, nil, nil
	assert.Empty(t, in.ValidateAnswers())

	errs := ValidateBody(nil, Ptr(-2.0), Ptr(1.8), validationDay)
	assert.Equal(t, []FieldError{
		{Field: "birthDate", Message: "is required"},
		{Field: "weight", Message: "must be positive"},
	}, errs)
}

func TestAssessmentRequest_Validate(t *testing.T) {
	in := validInput()
	req := AssessmentRequest{
		UserProfile: &UserProfileInput{Sex: Ptr(SexFemale), PregnancyStatus: Ptr(PregnancyNo)},
		HealthData:  &in,
	}
	assert.Empty(t, req.Validate(validationDay))

	req.UserProfile.PregnancyStatus = nil
	req.HealthData.Smokes = nil
	assert.Equal(t, []FieldError{
		{Field: "userProfile.pregnancyStatus", Message: "is required"},
		{Field: "healthData.smokes", Message: "is required"},
	}, req.Validate(validationDay))

	empty := AssessmentRequest{}
	assert.Equal(t, []FieldError{
		{Field: "userProfile", Message: "is required"},
		{Field: "healthData", Message: "is required"},
	}, empty.Validate(validationDay))
}
