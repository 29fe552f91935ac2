package insight

import (
	"errors"

	"trendins/ml/linreg"
)

// ErrorInfo 面向用户的错误文案, OriginalErrorType 保留原始类型便于排查
type ErrorInfo struct {
	Message           string `json:"message"`
	HelpText          string `json:"helpText"`
	OriginalErrorType string `json:"originalErrorType"`
}

// Translate 将回归错误映射为用户文案
// 对所有错误类型全定义, 未识别的类型走兜底文案, 永不失败
func Translate(err error) ErrorInfo {
	var regErr *linreg.Error
	if !errors.As(err, &regErr) {
		return fallbackInfo("Unknown")
	}

	switch regErr.Kind {
	case linreg.INSUFFICIENT_DATA:
		return ErrorInfo{
			Message:           "not enough data points",
			HelpText:          "Provide at least 2 data points with distinct x values to fit a trend line.",
			OriginalErrorType: string(regErr.Kind),
		}
	case linreg.INVALID_INPUT:
		return ErrorInfo{
			Message:           "invalid data provided",
			HelpText:          "All x and y values must be finite numbers; remove NaN or infinite values.",
			OriginalErrorType: string(regErr.Kind),
		}
	default:
		// DegenerateInput / MathError / NumericalStability 及未识别类型
		return fallbackInfo(string(regErr.Kind))
	}
}

func fallbackInfo(kind string) ErrorInfo {
	return ErrorInfo{
		Message:           "unexpected error occurred",
		HelpText:          "Please retry with different data, or contact support if the problem persists.",
		OriginalErrorType: kind,
	}
}
