package aggregator

import (
	"errors"
	"fmt"
	"sort"

	"mavita-score/internal/models"
)

// 分档颜色：最好 / 中间 / 最差
const (
	ColorGood    = "#5CB85C"
	ColorWarning = "#F0AD4E"
	ColorDanger  = "#D9534F"
)

var (
	ErrUnclassified     = errors.New("value not covered by any range")
	ErrInvalidPartition = errors.New("ranges do not partition [0, max]")
)

// threeBands 生成 [0,goodTo] / [goodTo+1,warnTo] / [warnTo+1,maxScore] 三档
func threeBands(maxScore, goodTo, warnTo int, good, warn, danger string) []models.Range {
	return []models.Range{
		{From: 0, To: goodTo, Color: ColorGood, Label: good},
		{From: goodTo + 1, To: warnTo, Color: ColorWarning, Label: warn},
		{From: warnTo + 1, To: maxScore, Color: ColorDanger, Label: danger},
	}
}

// Clamp 把分值限制在 [0, maxScore]
func Clamp(value, maxScore int) int {
	if value < 0 {
		return 0
	}
	if value > maxScore {
		return maxScore
	}
	return value
}

// Classify 闭区间包含，第一个命中的分档生效
func Classify(ranges []models.Range, value int) (models.Range, bool) {
	for _, r := range ranges {
		if r.Contains(value) {
			return r, true
		}
	}
	return models.Range{}, false
}

// ValidatePartition 检查分档无重叠、无空隙地覆盖 [0, maxScore]
func ValidatePartition(ranges []models.Range, maxScore int) error {
	if len(ranges) == 0 {
		return fmt.Errorf("%w: no ranges", ErrInvalidPartition)
	}
	sorted := make([]models.Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	next := 0
	for _, r := range sorted {
		if r.From > r.To {
			return fmt.Errorf("%w: range [%d,%d] is inverted", ErrInvalidPartition, r.From, r.To)
		}
		if r.From < next {
			return fmt.Errorf("%w: range [%d,%d] overlaps at %d", ErrInvalidPartition, r.From, r.To, r.From)
		}
		if r.From > next {
			return fmt.Errorf("%w: gap at [%d,%d]", ErrInvalidPartition, next, r.From-1)
		}
		next = r.To + 1
	}
	if next != maxScore+1 {
		return fmt.Errorf("%w: covers [0,%d], want [0,%d]", ErrInvalidPartition, next-1, maxScore)
	}
	return nil
}
