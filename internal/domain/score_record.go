package domain

import (
	"time"

	"mavita-score/internal/models"
)

// ScoreRecord 用户最近一次评估的因子汇总（score_summaries 表，只保留最新一行）
type ScoreRecord struct {
	UserUUID    string              `db:"user_uuid" json:"userUuid"`
	Summary     models.ScoreSummary `db:"summary" json:"summary"` // JSONB
	Total       int                 `db:"total" json:"total"`
	EvaluatedAt time.Time           `db:"evaluated_at" json:"evaluatedAt"`
}
