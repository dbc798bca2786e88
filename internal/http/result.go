package httpapi

import "mavita-score/internal/models"

// Result 统一响应包装
// - code: 2000 成功 / -1 失败
// - type: 'success' | 'error'
// - message: string
// - result: any
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultError   = -1
)

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Type: "error", Message: message, Result: nil}
}

// ValidationResult 400 响应的 result 部分
type ValidationResult struct {
	Errors []models.FieldError `json:"errors"`
}

func FailValidation(errs []models.FieldError) Result[ValidationResult] {
	return Result[ValidationResult]{
		Code:    ResultError,
		Type:    "error",
		Message: "validation failed",
		Result:  ValidationResult{Errors: errs},
	}
}
