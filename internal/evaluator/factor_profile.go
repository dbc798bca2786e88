package evaluator

import (
	"math"

	"mavita-score/internal/models"
)

// scoreAge 年龄（整岁）：<30→0, 30-39→1, 40-49→2, 50-59→3, ≥60→4
func scoreAge(in *models.RawHealthInput, today models.Date) (int, error) {
	if in.BirthDate == nil {
		return 0, missing(models.FactorAge, "birthDate")
	}
	if in.BirthDate.After(today) {
		return 0, outOfRange(models.FactorAge, "birthDate", in.BirthDate.String(), "must not be in the future")
	}

	age := in.BirthDate.YearsUntil(today)
	switch {
	case age < 30:
		return 0, nil
	case age < 40:
		return 1, nil
	case age < 50:
		return 2, nil
	case age < 60:
		return 3, nil
	default:
		return 4, nil
	}
}

// BMI 体重(kg) / 身高(m)²
func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// scoreBMI <18.5→2, 18.5-24.99→0, 25-29.99→2, ≥30→4
func scoreBMI(in *models.RawHealthInput, _ models.Date) (int, error) {
	if in.Weight == nil {
		return 0, missing(models.FactorBMI, "weight")
	}
	if in.Height == nil {
		return 0, missing(models.FactorBMI, "height")
	}
	if !(*in.Weight > 0) || math.IsInf(*in.Weight, 0) {
		return 0, outOfRange(models.FactorBMI, "weight", *in.Weight, "must be positive")
	}
	if !(*in.Height > 0) || math.IsInf(*in.Height, 0) {
		return 0, outOfRange(models.FactorBMI, "height", *in.Height, "must be positive")
	}

	bmi := BMI(*in.Weight, *in.Height)
	switch {
	case bmi < 18.5:
		return 2, nil
	case bmi < 25.0:
		return 0, nil
	case bmi < 30.0:
		return 2, nil
	default:
		return 4, nil
	}
}
