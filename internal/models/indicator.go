package models

import "time"

// Range 指标分档（闭区间 [From, To]）
type Range struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// Contains 判断 value 是否落在闭区间内
func (r Range) Contains(value int) bool {
	return value >= r.From && value <= r.To
}

// IndicatorResult 单个指标的计算结果（仪表盘展示用）
// Score 为风险分：0 最好，越高越差。
type IndicatorResult struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Primary   bool      `json:"primary"`
	Order     int       `json:"order"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"maxScore"`
	Ranges    []Range   `json:"ranges"`
	Band      Range     `json:"band"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Assessment 因子汇总 + 指标列表
type Assessment struct {
	Summary    ScoreSummary      `json:"summary"`
	Indicators []IndicatorResult `json:"indicators"`
}
