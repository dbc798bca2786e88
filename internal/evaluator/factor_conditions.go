package evaluator

import "mavita-score/internal/models"

func scoreChronicConditions(in *models.RawHealthInput, _ models.Date) (int, error) {
	return scoreConditions(models.FactorChronicConditions, "chronicConditions", in.ChronicConditions, ErrInvalidChronicConditionSelection)
}

func scoreParentalConditions(in *models.RawHealthInput, _ models.Date) (int, error) {
	return scoreConditions(models.FactorParentalConditions, "parentalConditions", in.ParentalConditions, ErrInvalidParentalConditionSelection)
}

// scoreConditions 每个（去重后的）病史代码 5 分
// 空列表、仅 NONE → 0；NONE 与其它代码同时出现 → selectionErr。
// 重复代码只计一次，[DIABETES, DIABETES, OTHER] 得 10 分，上限保持 25。
func scoreConditions(factor models.Factor, field string, list []models.Condition, selectionErr error) (int, error) {
	if len(list) == 0 {
		return 0, nil
	}

	hasNone := false
	codes := make(map[models.Condition]struct{}, len(list))
	for _, c := range list {
		if !c.IsValid() {
			allowed := conditionStrings(models.ConditionCodes())
			return 0, outOfRange(factor, field, string(c), models.InvalidEnumMessage(string(c), allowed))
		}
		if c == models.ConditionNone {
			hasNone = true
			continue
		}
		codes[c] = struct{}{}
	}

	if hasNone && len(list) > 1 {
		return 0, &FactorError{
			Factor: factor,
			Field:  field,
			Value:  conditionStrings(list),
			Reason: models.NoneExclusiveMessage,
			Err:    selectionErr,
		}
	}
	return len(codes) * models.PointsPerCondition, nil
}

func conditionStrings(list []models.Condition) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = string(c)
	}
	return out
}
