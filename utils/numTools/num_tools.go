package numTools

import (
	"math"

	"github.com/shopspring/decimal"
)

// IsValid 判断是否为有效数值 (非 NaN / ±Inf)
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Round 四舍五入到指定小数位; places 为 nil 或负数时原样返回
// 走 decimal 避免 1.005 这类二进制表示误差
func Round(x float64, places *int) float64 {
	if places == nil || *places < 0 {
		return x
	}
	if !IsValid(x) {
		// decimal 无法表示 NaN/Inf
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(int32(*places)).Float64()
	return f
}

// Places 构造小数位配置项
func Places(n int) *int {
	return &n
}
