package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout 日期格式（与前端约定：YYYY-MM-DD）
const DateLayout = "2006-01-02"

// Date 仅包含日期部分（UTC 零点）
type Date struct {
	time.Time
}

// NewDate 截断到日期（丢弃时分秒和时区）
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 取 t 在其所在时区的日历日期
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// After 按日历日期比较
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// YearsUntil 计算从 d 到 on 的整年数（生日未到则减一）
func (d Date) YearsUntil(on Date) int {
	years := on.Year() - d.Year()
	if on.Month() < d.Month() || (on.Month() == d.Month() && on.Day() < d.Day()) {
		years--
	}
	return years
}
