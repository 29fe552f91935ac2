package insight

import (
	"errors"
	"fmt"

	"trendins/chartdata"
	"trendins/ml/linreg"
)

// Options 洞察分级配置, 为 nil 的项回落到默认值
// 各项互不影响, 不存在跨项耦合
type Options struct {
	RSquaredThresholdWeak   *float64
	RSquaredThresholdStrong *float64
	PValueSignificanceLevel *float64 // 预留
	OutlierZScoreThreshold  *float64 // 预留
}

// Insight 单条图表洞察
type Insight struct {
	Type        InsightType        `json:"type"`
	Summary     string             `json:"summary"`
	Data        map[string]float64 `json:"data,omitempty"`
	Annotations []string           `json:"annotations,omitempty"`
}

// Result 洞察生成结果
type Result struct {
	OK       bool       `json:"ok"`
	Insights []Insight  `json:"insights,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
}

// Generate 由拟合结果生成定序的图表洞察
// 成功时固定返回两条, 顺序为 [趋势方向, 相关强度]
// 拟合失败时只透传翻译后的错误, 不重新推导也不吞掉错误类型
func Generate(opts Options, model *linreg.Model, fitErr error) Result {
	if fitErr != nil {
		info := Translate(fitErr)
		return Result{OK: false, Error: &info}
	}
	if model == nil {
		info := Translate(errors.New("nil regression model"))
		return Result{OK: false, Error: &info}
	}

	return Result{
		OK:       true,
		Insights: []Insight{trendInsight(model), strengthInsight(opts, model)},
	}
}

// Generator 预先绑定配置, 返回可对多个拟合结果复用的生成函数 (data-last)
func Generator(opts Options) func(*linreg.Model, error) Result {
	return func(model *linreg.Model, fitErr error) Result {
		return Generate(opts, model, fitErr)
	}
}

// trendInsight 按斜率符号描述趋势方向, 附带趋势线标注
func trendInsight(model *linreg.Model) Insight {
	var summary string
	switch {
	case model.Slope > 0:
		summary = "The data shows a positive linear trend: as X increases, Y tends to increase."
	case model.Slope < 0:
		summary = "The data shows a negative linear trend: as X increases, Y tends to decrease."
	default:
		summary = "The data shows no significant linear trend: Y remains relatively constant as X changes."
	}

	return Insight{
		Type:        TREND_DESCRIPTION,
		Summary:     summary,
		Data:        map[string]float64{"m": model.Slope, "b": model.Intercept},
		Annotations: []string{chartdata.TrendLine(model.Slope, model.Intercept)},
	}
}

// strengthInsight 按R²阈值分级
// 下界取闭区间: 恰好等于阈值归入更强的一级
func strengthInsight(opts Options, model *linreg.Model) Insight {
	weak := orDefault(opts.RSquaredThresholdWeak, DEFAULT_RSQ_WEAK)
	strong := orDefault(opts.RSquaredThresholdStrong, DEFAULT_RSQ_STRONG)
	r2 := model.RSquared

	var summary string
	switch {
	case r2 >= strong:
		summary = fmt.Sprintf("There is a strong linear relationship: the model explains most of the variance in Y (R² = %.2f).", r2)
	case r2 >= weak:
		summary = fmt.Sprintf("There is a moderate linear relationship between X and Y (R² = %.2f).", r2)
	default:
		summary = fmt.Sprintf("There is a weak linear relationship (R² = %.2f); a linear model may be a poor fit for this data.", r2)
	}

	return Insight{
		Type:    CORRELATION_STRENGTH,
		Summary: summary,
		Data:    map[string]float64{"rSquared": r2},
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
