package domain

import (
	"time"

	"mavita-score/internal/models"
)

// Profile 用户个人资料（对应 user_profiles 表，每个用户一行）
type Profile struct {
	UserUUID string `db:"user_uuid" json:"userUuid"` // UUID, PRIMARY KEY

	BirthDate *models.Date `db:"birth_date" json:"birthDate"` // DATE, NOT NULL
	Weight    *float64     `db:"weight" json:"weight"`        // NUMERIC(5,2) kg
	Height    *float64     `db:"height" json:"height"`        // NUMERIC(3,2) m

	Sex             *models.BiologicalSex   `db:"sex" json:"sex"`
	LgbtqiaStatus   *models.LgbtqiaStatus   `db:"lgbtqia_status" json:"lgbtqiaStatus,omitempty"` // nullable
	PregnancyStatus *models.PregnancyStatus `db:"pregnancy_status" json:"pregnancyStatus"`

	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate 校验资料（today 用于判断出生日期）
func (p *Profile) Validate(today models.Date) []models.FieldError {
	errs := models.ValidateBody(p.BirthDate, p.Weight, p.Height, today)
	demographics := models.UserProfileInput{
		Sex:             p.Sex,
		LgbtqiaStatus:   p.LgbtqiaStatus,
		PregnancyStatus: p.PregnancyStatus,
	}
	return append(errs, demographics.Validate()...)
}
