package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"mavita-score/internal/domain"
	"mavita-score/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserUUID = "4b1a3c2e-5d6f-4a7b-8c9d-0e1f2a3b4c5d"

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var profileCols = []string{"user_uuid", "birth_date", "weight", "height", "sex", "lgbtqia_status", "pregnancy_status", "updated_at"}

func TestGetProfile_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresProfilesRepository(db)

	updated := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(profileCols).
		AddRow(testUserUUID, time.Date(1980, time.January, 10, 0, 0, 0, 0, time.UTC), 70.5, 1.75, "MALE", nil, "NO", updated)
	mock.ExpectQuery(`SELECT`).
		WithArgs(testUserUUID).
		WillReturnRows(rows)

	p, err := repo.GetProfile(context.Background(), testUserUUID)
	require.NoError(t, err)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "1980-01-10", p.BirthDate.String())
	assert.Equal(t, 70.5, *p.Weight)
	assert.Equal(t, models.SexMale, *p.Sex)
	assert.Nil(t, p.LgbtqiaStatus)
	assert.Equal(t, models.PregnancyNo, *p.PregnancyStatus)
	assert.Equal(t, updated, p.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresProfilesRepository(db)

	mock.ExpectQuery(`SELECT`).
		WithArgs(testUserUUID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), testUserUUID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresProfilesRepository(db)

	birth := models.NewDate(1990, time.May, 20)
	in := &domain.Profile{
		UserUUID:        testUserUUID,
		BirthDate:       &birth,
		Weight:          models.Ptr(60.0),
		Height:          models.Ptr(1.62),
		Sex:             models.Ptr(models.SexFemale),
		LgbtqiaStatus:   models.Ptr(models.LgbtqiaNo),
		PregnancyStatus: models.Ptr(models.PregnancyPlanning),
	}
	updated := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(profileCols).
		AddRow(testUserUUID, birth.Time, 60.0, 1.62, "FEMALE", "NO", "PLANNING", updated)
	mock.ExpectQuery(`INSERT INTO user_profiles`).
		WithArgs(testUserUUID, birth.Time, 60.0, 1.62, "FEMALE", "NO", "PLANNING").
		WillReturnRows(rows)

	out, err := repo.UpsertProfile(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, updated, out.UpdatedAt)
	assert.Equal(t, models.PregnancyPlanning, *out.PregnancyStatus)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.UpsertProfile(context.Background(), &domain.Profile{})
	assert.Error(t, err)
}

var healthCols = []string{
	"user_uuid", "smokes", "alcohol_consumption", "physical_activity_level", "diet_quality",
	"health_feeling", "average_sleep_window", "average_sleep_hours", "sleep_difficulty",
	"night_awakening_frequency", "wake_up_mood", "anxiety_shortness_breath", "stress_level",
	"sadness_level", "personal_family_history", "diabetes_symptom_level",
	"headache_dizziness_level", "preventive_exam_frequency", "updated_at",
}

func TestGetHealth_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresHealthsRepository(db)

	history := `{"chronicConditions":["DIABETES","OTHER"],"parentalConditions":["NONE"],"chronicOther":"asma"}`
	rows := sqlmock.NewRows(healthCols).AddRow(
		testUserUUID, true, "WEEKENDS", "OFTEN", "AVERAGE",
		"SOMETIMES", nil, 6.5, "RARELY",
		"SOMETIMES", "NO", "RARELY", "YES",
		"RARELY", history, "NO",
		"SOMETIMES", "YES", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	)
	mock.ExpectQuery(`SELECT`).
		WithArgs(testUserUUID).
		WillReturnRows(rows)

	h, err := repo.GetHealth(context.Background(), testUserUUID)
	require.NoError(t, err)
	assert.True(t, *h.Smokes)
	assert.Equal(t, models.AlcoholWeekends, *h.AlcoholConsumption)
	assert.Nil(t, h.AverageSleepWindow)
	assert.Equal(t, 6.5, *h.AverageSleepHours)
	assert.Equal(t, models.FrequencyYes, *h.StressLevel)
	assert.Equal(t, []models.Condition{models.ConditionDiabetes, models.ConditionOther}, h.PersonalFamilyHistory.ChronicConditions)
	assert.Equal(t, "asma", h.PersonalFamilyHistory.ChronicOther)
	assert.Equal(t, models.PreventiveExamYes, *h.PreventiveExamFrequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHealth_Errors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresHealthsRepository(db)

	mock.ExpectQuery(`SELECT`).WithArgs(testUserUUID).WillReturnError(sql.ErrNoRows)
	_, err := repo.GetHealth(context.Background(), testUserUUID)
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT`).WithArgs(testUserUUID).WillReturnError(boom)
	_, err = repo.GetHealth(context.Background(), testUserUUID)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertHealth(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresHealthsRepository(db)

	in := &domain.Health{
		UserUUID:           testUserUUID,
		Smokes:             models.Ptr(false),
		AverageSleepWindow: models.Ptr(models.SleepBetweenSevenAndEight),
		PersonalFamilyHistory: domain.FamilyHistory{
			ChronicConditions:  []models.Condition{models.ConditionNone},
			ParentalConditions: []models.Condition{models.ConditionObesity},
		},
	}
	args := make([]driver.Value, 18)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	rows := sqlmock.NewRows(healthCols).AddRow(
		testUserUUID, false, nil, nil, nil,
		nil, "BETWEEN_SEVEN_AND_EIGHT", nil, nil,
		nil, nil, nil, nil,
		nil, `{"chronicConditions":["NONE"],"parentalConditions":["OBESITY"]}`, nil,
		nil, nil, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	)
	mock.ExpectQuery(`INSERT INTO healths`).
		WithArgs(args...).
		WillReturnRows(rows)

	out, err := repo.UpsertHealth(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, *out.Smokes)
	assert.Equal(t, models.SleepBetweenSevenAndEight, *out.AverageSleepWindow)
	assert.Nil(t, out.AlcoholConsumption)
	assert.Equal(t, []models.Condition{models.ConditionObesity}, out.PersonalFamilyHistory.ParentalConditions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreSummaries(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresScoreSummariesRepository(db)
	evaluatedAt := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	rec := &domain.ScoreRecord{
		UserUUID:    testUserUUID,
		Summary:     models.ScoreSummary{AgeScore: 2, ChronicConditionScore: 10},
		EvaluatedAt: evaluatedAt,
	}
	mock.ExpectExec(`INSERT INTO score_summaries`).
		WithArgs(testUserUUID, sqlmock.AnyArg(), 12, evaluatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SaveScoreSummary(context.Background(), rec))

	rows := sqlmock.NewRows([]string{"user_uuid", "summary", "total", "evaluated_at"}).
		AddRow(testUserUUID, `{"ageScore":2,"chronicConditionScore":10}`, 12, evaluatedAt)
	mock.ExpectQuery(`SELECT user_uuid::text, summary, total, evaluated_at`).
		WithArgs(testUserUUID).
		WillReturnRows(rows)

	got, err := repo.GetScoreSummary(context.Background(), testUserUUID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Summary.AgeScore)
	assert.Equal(t, 10, got.Summary.ChronicConditionScore)
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, evaluatedAt, got.EvaluatedAt)

	mock.ExpectQuery(`SELECT`).WithArgs(testUserUUID).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetScoreSummary(context.Background(), testUserUUID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
