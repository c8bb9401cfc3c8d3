package httpapi

// Result is the envelope every JSON endpoint answers with.
// - code: 2000 success, 2001 warning, -1 error
// - type: 'success' | 'error' | 'warning'
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultWarning = 2001
	ResultError   = -1
)

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

// Warn reports a request that was handled but produced nothing, such as an empty export.
func Warn(message string) Result[any] {
	return Result[any]{Code: ResultWarning, Type: "warning", Message: message, Result: nil}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Type: "error", Message: message, Result: nil}
}
