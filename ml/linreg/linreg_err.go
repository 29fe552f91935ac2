package linreg

import "fmt"

// 回归错误类型, 对外名称与图表端约定一致
type ErrKind string

const (
	INSUFFICIENT_DATA   ErrKind = "InsufficientData"
	INVALID_INPUT       ErrKind = "InvalidInput"
	DEGENERATE_INPUT    ErrKind = "DegenerateInput"
	MATH_ERROR          ErrKind = "MathError"
	NUMERICAL_STABILITY ErrKind = "NumericalStability" // 预留: 病态条件数检测
)

// Error 拟合失败的类型化错误, 始终作为值返回, 不panic
type Error struct {
	Kind    ErrKind
	Message string
	Index   int // 非法点在原始输入中的下标; 与下标无关时为 -1
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is 按 Kind 匹配, 支持 errors.Is(err, &Error{Kind: INVALID_INPUT})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrKind, msg string, index int) *Error {
	return &Error{Kind: kind, Message: msg, Index: index}
}
