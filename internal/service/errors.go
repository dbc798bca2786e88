package service

import (
	"errors"
	"strings"

	"mavita-score/internal/evaluator"
	"mavita-score/internal/models"
	"mavita-score/internal/repository"
)

var (
	// ErrNotFound 用户资料或问卷不存在
	ErrNotFound = repository.ErrNotFound
	// ErrStorageDisabled 未配置数据库
	ErrStorageDisabled = errors.New("storage disabled")
)

// ValidationError 输入校验失败（HTTP 400）
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// asValidationError 评分阶段的输入错误转为 ValidationError，其余原样返回
func asValidationError(err error, prefix string) error {
	if err == nil || !evaluator.IsInputError(err) {
		return err
	}
	fieldErrs := evaluator.FieldErrors(err)
	for i := range fieldErrs {
		fieldErrs[i].Field = prefix + fieldErrs[i].Field
	}
	return &ValidationError{Errors: fieldErrs}
}
