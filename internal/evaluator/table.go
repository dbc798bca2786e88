package evaluator

import "mavita-score/internal/models"

type entry[T ~string] struct {
	value  T
	points int
}

// table 分类答案 → 分值 对照表（有序，便于生成错误提示）
type table[T ~string] []entry[T]

// lookup 未填写记 0 分；不在表中的值视为越界
func (t table[T]) lookup(factor models.Factor, field string, value *T) (int, error) {
	if value == nil {
		return 0, nil
	}
	for _, e := range t {
		if e.value == *value {
			return e.points, nil
		}
	}
	return 0, outOfRange(factor, field, string(*value), models.InvalidEnumMessage(string(*value), t.allowed()))
}

func (t table[T]) allowed() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = string(e.value)
	}
	return out
}
