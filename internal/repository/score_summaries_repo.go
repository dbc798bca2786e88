package repository

import (
	"context"

	"mavita-score/internal/domain"
)

// ScoreSummariesRepository 评估汇总Repository接口（每个用户只保留最新一条）
type ScoreSummariesRepository interface {
	GetScoreSummary(ctx context.Context, userUUID string) (*domain.ScoreRecord, error)
	SaveScoreSummary(ctx context.Context, record *domain.ScoreRecord) error
}
