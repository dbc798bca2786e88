package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"
)

// PostgresProfilesRepository 个人资料Repository实现
type PostgresProfilesRepository struct {
	db *sql.DB
}

// NewPostgresProfilesRepository 创建个人资料Repository
func NewPostgresProfilesRepository(db *sql.DB) *PostgresProfilesRepository {
	return &PostgresProfilesRepository{db: db}
}

// 确保实现了接口
var _ ProfilesRepository = (*PostgresProfilesRepository)(nil)

const profileColumns = `
			user_uuid::text,
			birth_date,
			weight,
			height,
			sex,
			lgbtqia_status,
			pregnancy_status,
			updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var birthDate sql.NullTime
	var weight, height sql.NullFloat64
	var sex, lgbtqia, pregnancy sql.NullString

	if err := row.Scan(
		&p.UserUUID,
		&birthDate,
		&weight,
		&height,
		&sex,
		&lgbtqia,
		&pregnancy,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if birthDate.Valid {
		d := models.DateOf(birthDate.Time)
		p.BirthDate = &d
	}
	p.Weight = floatPtr(weight)
	p.Height = floatPtr(height)
	p.Sex = enumPtr[models.BiologicalSex](sex)
	p.LgbtqiaStatus = enumPtr[models.LgbtqiaStatus](lgbtqia)
	p.PregnancyStatus = enumPtr[models.PregnancyStatus](pregnancy)
	return &p, nil
}

// GetProfile 获取用户资料
func (r *PostgresProfilesRepository) GetProfile(ctx context.Context, userUUID string) (*domain.Profile, error) {
	if userUUID == "" {
		return nil, ErrNotFound
	}

	query := `
		SELECT` + profileColumns + `
		FROM user_profiles
		WHERE user_uuid = $1
	`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", userUUID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// UpsertProfile 创建或覆盖用户资料（ON CONFLICT (user_uuid)）
func (r *PostgresProfilesRepository) UpsertProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil || profile.UserUUID == "" {
		return nil, fmt.Errorf("user_uuid is required")
	}

	var birthDate sql.NullTime
	if profile.BirthDate != nil {
		birthDate = sql.NullTime{Time: profile.BirthDate.Time, Valid: true}
	}

	query := `
		INSERT INTO user_profiles (
			user_uuid, birth_date, weight, height, sex, lgbtqia_status, pregnancy_status, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_uuid) DO UPDATE SET
			birth_date = EXCLUDED.birth_date,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			sex = EXCLUDED.sex,
			lgbtqia_status = EXCLUDED.lgbtqia_status,
			pregnancy_status = EXCLUDED.pregnancy_status,
			updated_at = now()
		RETURNING` + profileColumns + `
	`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query,
		profile.UserUUID,
		birthDate,
		nullFloat(profile.Weight),
		nullFloat(profile.Height),
		nullEnum(profile.Sex),
		nullEnum(profile.LgbtqiaStatus),
		nullEnum(profile.PregnancyStatus),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return p, nil
}
