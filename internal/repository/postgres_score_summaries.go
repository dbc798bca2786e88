package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"mavita-score/internal/domain"
)

// PostgresScoreSummariesRepository 评估汇总Repository实现
type PostgresScoreSummariesRepository struct {
	db *sql.DB
}

// NewPostgresScoreSummariesRepository 创建评估汇总Repository
func NewPostgresScoreSummariesRepository(db *sql.DB) *PostgresScoreSummariesRepository {
	return &PostgresScoreSummariesRepository{db: db}
}

// 确保实现了接口
var _ ScoreSummariesRepository = (*PostgresScoreSummariesRepository)(nil)

// GetScoreSummary 获取用户最近一次评估
func (r *PostgresScoreSummariesRepository) GetScoreSummary(ctx context.Context, userUUID string) (*domain.ScoreRecord, error) {
	if userUUID == "" {
		return nil, ErrNotFound
	}

	query := `
		SELECT user_uuid::text, summary, total, evaluated_at
		FROM score_summaries
		WHERE user_uuid = $1
	`
	var rec domain.ScoreRecord
	var summary []byte
	err := r.db.QueryRowContext(ctx, query, userUUID).Scan(
		&rec.UserUUID,
		&summary,
		&rec.Total,
		&rec.EvaluatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("score summary %s: %w", userUUID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get score summary: %w", err)
	}
	if err := json.Unmarshal(summary, &rec.Summary); err != nil {
		return nil, fmt.Errorf("failed to decode score summary: %w", err)
	}
	return &rec, nil
}

// SaveScoreSummary 覆盖保存最近一次评估
func (r *PostgresScoreSummariesRepository) SaveScoreSummary(ctx context.Context, record *domain.ScoreRecord) error {
	if record == nil || record.UserUUID == "" {
		return fmt.Errorf("user_uuid is required")
	}
	summary, err := json.Marshal(record.Summary)
	if err != nil {
		return fmt.Errorf("failed to encode score summary: %w", err)
	}

	query := `
		INSERT INTO score_summaries (user_uuid, summary, total, evaluated_at)
		VALUES ($1, $2::jsonb, $3, $4)
		ON CONFLICT (user_uuid) DO UPDATE SET
			summary = EXCLUDED.summary,
			total = EXCLUDED.total,
			evaluated_at = EXCLUDED.evaluated_at
	`
	if _, err := r.db.ExecContext(ctx, query, record.UserUUID, string(summary), record.Summary.Total(), record.EvaluatedAt); err != nil {
		return fmt.Errorf("failed to save score summary: %w", err)
	}
	return nil
}
