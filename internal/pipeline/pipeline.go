package pipeline

import (
	"time"

	"mavita-score/internal/aggregator"
	"mavita-score/internal/evaluator"
	"mavita-score/internal/models"

	"go.uber.org/zap"
)

// Pipeline 因子评分 + 指标聚合
type Pipeline struct {
	factors    *evaluator.Evaluator
	indicators *aggregator.Aggregator
}

// New 创建评估流水线（两个阶段共用同一个时钟）
func New(now func() time.Time, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		factors:    evaluator.NewEvaluator(now, logger.Named("evaluator")),
		indicators: aggregator.NewAggregator(now, logger.Named("aggregator")),
	}
}

// Assess 评估一份输入：任一因子失败则直接返回错误
func (p *Pipeline) Assess(input models.RawHealthInput) (models.Assessment, error) {
	summary, err := p.factors.EvaluateFactors(input)
	if err != nil {
		return models.Assessment{}, err
	}
	indicators, err := p.indicators.EvaluateIndicators(summary)
	if err != nil {
		return models.Assessment{}, err
	}
	return models.Assessment{Summary: summary, Indicators: indicators}, nil
}

// Indicators 只做指标聚合（已有汇总时使用）
func (p *Pipeline) Indicators(summary models.ScoreSummary) ([]models.IndicatorResult, error) {
	return p.indicators.EvaluateIndicators(summary)
}
