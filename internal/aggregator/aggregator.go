package aggregator

import (
	"errors"
	"fmt"
	"time"

	"mavita-score/internal/models"

	"go.uber.org/zap"
)

var (
	// ErrInvalidSummary 汇总中存在超出因子取值范围的分值（调用方错误）
	ErrInvalidSummary = errors.New("invalid score summary")
	// ErrUnknownFactor 指标定义引用了未知因子（内部缺陷）
	ErrUnknownFactor = errors.New("unknown factor")
)

// Aggregator 指标聚合器（无可变状态，可并发使用）
type Aggregator struct {
	now         func() time.Time
	logger      *zap.Logger
	definitions []Definition
	compute     func(Definition, models.ScoreSummary, time.Time) (models.IndicatorResult, error)
}

// NewAggregator 创建指标聚合器
// now 为 nil 时使用 time.Now；logger 为 nil 时不输出日志。
func NewAggregator(now func() time.Time, logger *zap.Logger) *Aggregator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		now:         now,
		logger:      logger,
		definitions: Catalog(),
		compute:     Compute,
	}
}

// Definitions 聚合器使用的指标定义
func (a *Aggregator) Definitions() []Definition {
	return a.definitions
}

// ValidateSummary 检查每个因子分值都在 [0, MaxPoints] 内
func ValidateSummary(summary models.ScoreSummary) error {
	var errs []error
	for _, fs := range summary.Factors() {
		if fs.Points < 0 || fs.Points > fs.Factor.MaxPoints() {
			errs = append(errs, fmt.Errorf("%w: %s=%d outside [0,%d]",
				ErrInvalidSummary, fs.Factor, fs.Points, fs.Factor.MaxPoints()))
		}
	}
	return errors.Join(errs...)
}

// Compute 计算单个指标：求和 → 截断到 [0,MAX] → 分档
func Compute(def Definition, summary models.ScoreSummary, updatedAt time.Time) (models.IndicatorResult, error) {
	sum := 0
	for _, f := range def.Factors {
		points, ok := summary.Score(f)
		if !ok {
			return models.IndicatorResult{}, fmt.Errorf("%w %q in indicator %s", ErrUnknownFactor, f, def.ID)
		}
		sum += points
	}

	score := Clamp(sum, def.MaxScore)
	band, ok := Classify(def.Ranges, score)
	if !ok {
		return models.IndicatorResult{}, fmt.Errorf("%w: indicator %s value %d", ErrUnclassified, def.ID, score)
	}

	return models.IndicatorResult{
		ID:        def.ID,
		Title:     def.Title,
		Primary:   def.Primary,
		Order:     def.Order,
		Score:     score,
		MaxScore:  def.MaxScore,
		Ranges:    append([]models.Range(nil), def.Ranges...),
		Band:      band,
		UpdatedAt: updatedAt,
	}, nil
}

// EvaluateIndicators 按注册顺序计算全部指标
// 汇总本身非法时返回错误且不返回任何结果；单个指标内部故障（含 panic）记录日志后跳过。
func (a *Aggregator) EvaluateIndicators(summary models.ScoreSummary) ([]models.IndicatorResult, error) {
	if err := ValidateSummary(summary); err != nil {
		return nil, err
	}

	updatedAt := a.now().UTC()
	results := make([]models.IndicatorResult, 0, len(a.definitions))
	for _, def := range a.definitions {
		result, err := a.safeCompute(def, summary, updatedAt)
		if err != nil {
			a.logger.Error("Indicator computation failed, skipping",
				zap.String("indicator", def.ID),
				zap.Error(err),
			)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (a *Aggregator) safeCompute(def Definition, summary models.ScoreSummary, updatedAt time.Time) (result models.IndicatorResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("indicator %s panicked: %v", def.ID, r)
		}
	}()
	return a.compute(def, summary, updatedAt)
}

var defaultAggregator = NewAggregator(nil, nil)

// EvaluateIndicators 使用默认聚合器（系统时钟）
func EvaluateIndicators(summary models.ScoreSummary) ([]models.IndicatorResult, error) {
	return defaultAggregator.EvaluateIndicators(summary)
}
