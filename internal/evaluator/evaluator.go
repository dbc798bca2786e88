package evaluator

import (
	"errors"
	"time"

	"mavita-score/internal/models"

	"go.uber.org/zap"
)

// scoreFunc 单个因子的评分函数（纯函数，无状态）
// today 为评估日期，仅年龄因子使用。
type scoreFunc func(in *models.RawHealthInput, today models.Date) (int, error)

type factorScorer struct {
	factor models.Factor
	score  scoreFunc
}

// scorers 因子评分注册表（顺序即 ScoreSummary 的因子顺序）
var scorers = []factorScorer{
	{models.FactorAge, scoreAge},
	{models.FactorBMI, scoreBMI},
	{models.FactorSmoking, scoreSmoking},
	{models.FactorAlcoholConsumption, scoreAlcoholConsumption},
	{models.FactorPhysicalActivity, scorePhysicalActivity},
	{models.FactorDiet, scoreDiet},
	{models.FactorHealthFeeling, scoreHealthFeeling},
	{models.FactorSleepHours, scoreSleepHours},
	{models.FactorSleepDifficulty, scoreSleepDifficulty},
	{models.FactorNightAwakening, scoreNightAwakening},
	{models.FactorWakeUpMood, scoreWakeUpMood},
	{models.FactorAnxietyShortnessBreath, scoreAnxietyShortnessBreath},
	{models.FactorStressLevel, scoreStressLevel},
	{models.FactorSadnessLevel, scoreSadnessLevel},
	{models.FactorChronicConditions, scoreChronicConditions},
	{models.FactorParentalConditions, scoreParentalConditions},
	{models.FactorDiabetesSymptoms, scoreDiabetesSymptoms},
	{models.FactorHeadacheDizziness, scoreHeadacheDizziness},
	{models.FactorPreventiveExamFrequency, scorePreventiveExam},
}

// Evaluator 因子评分器（持有注册表和时钟，可并发使用）
type Evaluator struct {
	now     func() time.Time
	logger  *zap.Logger
	scorers []factorScorer
}

// NewEvaluator 创建因子评分器
// now 为 nil 时使用 time.Now；logger 为 nil 时不输出日志。
func NewEvaluator(now func() time.Time, logger *zap.Logger) *Evaluator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		now:     now,
		logger:  logger,
		scorers: scorers,
	}
}

// Factors 注册的因子（按执行顺序）
func (e *Evaluator) Factors() []models.Factor {
	out := make([]models.Factor, 0, len(e.scorers))
	for _, s := range e.scorers {
		out = append(out, s.factor)
	}
	return out
}

// EvaluateFactors 对同一份输入执行全部因子评分，生成 ScoreSummary
// 所有评分函数都会执行；任一失败则返回空汇总和合并后的错误，不返回部分结果。
func (e *Evaluator) EvaluateFactors(input models.RawHealthInput) (models.ScoreSummary, error) {
	today := models.DateOf(e.now())

	var summary models.ScoreSummary
	var errs []error
	for _, s := range e.scorers {
		points, err := s.score(&input, today)
		if err != nil {
			e.logger.Debug("Factor scoring failed",
				zap.String("factor", string(s.factor)),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		summary.Set(s.factor, points)
	}

	if len(errs) > 0 {
		return models.ScoreSummary{}, errors.Join(errs...)
	}
	return summary, nil
}

var defaultEvaluator = NewEvaluator(nil, nil)

// EvaluateFactors 使用默认评分器（系统时钟）
func EvaluateFactors(input models.RawHealthInput) (models.ScoreSummary, error) {
	return defaultEvaluator.EvaluateFactors(input)
}
