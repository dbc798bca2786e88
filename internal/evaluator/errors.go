package evaluator

import (
	"errors"
	"fmt"

	"mavita-score/internal/models"
)

// 评分错误类别。病史类分为本人、父母两种，便于调用方定位字段。
var (
	ErrInvalidChronicConditionSelection  = errors.New("invalid chronic condition selection")
	ErrInvalidParentalConditionSelection = errors.New("invalid parental condition selection")
	ErrMissingRequiredField              = errors.New("missing required field")
	ErrOutOfRangeValue                   = errors.New("value out of range")
)

// FactorError 单个因子评分失败（包含因子、输入字段和非法值）
type FactorError struct {
	Factor models.Factor
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *FactorError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Factor, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s %s (value: %v): %v", e.Factor, e.Field, e.Reason, e.Value, e.Err)
}

func (e *FactorError) Unwrap() error {
	return e.Err
}

func missing(factor models.Factor, field string) *FactorError {
	return &FactorError{
		Factor: factor,
		Field:  field,
		Reason: "is required",
		Err:    ErrMissingRequiredField,
	}
}

func outOfRange(factor models.Factor, field string, value any, reason string) *FactorError {
	return &FactorError{
		Factor: factor,
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrOutOfRangeValue,
	}
}

// FactorErrors 展开（可能是 errors.Join 合并的）评估错误
func FactorErrors(err error) []*FactorError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*FactorError
		for _, e := range joined.Unwrap() {
			out = append(out, FactorErrors(e)...)
		}
		return out
	}
	var fe *FactorError
	if errors.As(err, &fe) {
		return []*FactorError{fe}
	}
	return nil
}

// FieldErrors 转换为字段级错误（HTTP 层使用）
func FieldErrors(err error) []models.FieldError {
	factorErrs := FactorErrors(err)
	out := make([]models.FieldError, 0, len(factorErrs))
	for _, fe := range factorErrs {
		out = append(out, models.FieldError{Field: fe.Field, Message: fe.Reason})
	}
	return out
}

// IsInputError 是否为输入数据导致的错误（而不是内部错误）
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidChronicConditionSelection) ||
		errors.Is(err, ErrInvalidParentalConditionSelection) ||
		errors.Is(err, ErrMissingRequiredField) ||
		errors.Is(err, ErrOutOfRangeValue)
}
