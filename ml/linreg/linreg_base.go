package linreg

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"trendins/utils/numTools"
)

const METHOD_LINEAR = "linear"

// Point 原始数据点; Y 为 nil 表示缺失
type Point struct {
	X float64
	Y *float64
}

// FittedPoint 拟合输出点 (x, ŷ), 可直接喂给图表
type FittedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options 回归配置
type Options struct {
	Precision *int // 输出保留小数位; nil 或负数表示不取整
	Order     int  // 预留 (高阶拟合)
	Period    int  // 预留 (周期项)
}

// Model 线性拟合结果
type Model struct {
	Slope     float64       // 斜率 m
	Intercept float64       // 截距 b
	RSquared  float64       // 决定系数
	Method    string        // 固定 METHOD_LINEAR
	Points    []FittedPoint // 与原始输入等长的拟合点, 含y缺失行
	NObs      int           // 有效样本量
	SE        float64       // 斜率标准误 (df<=0 或 x 无离散时 NaN)
	TStat     float64       // 斜率t统计量
	PValue    float64       // 双尾p值 (Student-t, df=n-2)

	precision *int
}

// Predict 对原始x计算拟合点
// 先用原始x相乘再取整, 取整只作用在输出上, 不影响乘法边界
func (m *Model) Predict(x float64) FittedPoint {
	return FittedPoint{
		X: numTools.Round(x, m.precision),
		Y: numTools.Round(m.Slope*x+m.Intercept, m.precision),
	}
}

// Fit 对二维数据点做OLS线性拟合
// 流程: 过滤缺失y -> 校验有限值 -> 单遍累加 -> 正规方程求解 -> 全量预测 -> R²
func Fit(opts Options, points []Point) (*Model, error) {
	// 1. 过滤 y 缺失的点, 记录其在原始输入中的下标
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	idx := make([]int, 0, len(points))
	for i, p := range points {
		if p.Y == nil {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, *p.Y)
		idx = append(idx, i)
	}
	n := len(xs)
	if n < 2 {
		return nil, newError(INSUFFICIENT_DATA,
			fmt.Sprintf("need at least 2 valid data points, got %d", n), -1)
	}
	if n < len(points) {
		logrus.Debugf("linreg: dropped %d points with missing y", len(points)-n)
	}

	// 2. 有效点必须全为有限数
	for i := 0; i < n; i++ {
		if !numTools.IsValid(xs[i]) || !numTools.IsValid(ys[i]) {
			return nil, newError(INVALID_INPUT,
				fmt.Sprintf("non-finite value at point %d", idx[i]), idx[i])
		}
	}

	// 3. 单遍累加 Σx, Σy, Σx², Σxy
	sumX := floats.Sum(xs)
	sumY := floats.Sum(ys)
	sumXX := floats.Dot(xs, xs)
	sumXY := floats.Dot(xs, ys)

	// 4. 分母为0 ⇒ 所有x相同, 垂直线不可拟合
	den := float64(n)*sumXX - sumX*sumX
	if den == 0 {
		logrus.Debugf("linreg: degenerate input, all x identical (n=%d)", n)
		return nil, newError(DEGENERATE_INPUT, "all x values are identical", -1)
	}

	// 5. 正规方程解, 系数按配置取整
	slope := (float64(n)*sumXY - sumX*sumY) / den
	intercept := sumY/float64(n) - slope*sumX/float64(n)
	slope = numTools.Round(slope, opts.Precision)
	intercept = numTools.Round(intercept, opts.Precision)

	// 6. 系数必须有限
	if !numTools.IsValid(slope) || !numTools.IsValid(intercept) {
		return nil, newError(MATH_ERROR, "regression produced non-finite coefficients", -1)
	}

	model := &Model{
		Slope:     slope,
		Intercept: intercept,
		Method:    METHOD_LINEAR,
		NObs:      n,
	}
	if opts.Precision != nil && *opts.Precision >= 0 {
		p := *opts.Precision
		model.precision = &p
	}

	// 7-8. 对全部原始x生成拟合点, 保留原始长度 (y缺失行同样给出拟合值)
	model.Points = make([]FittedPoint, len(points))
	for i, p := range points {
		model.Points[i] = model.Predict(p.X)
	}

	// 9. R² 基于有效子集的 (观测值, 拟合值) 对
	pred := make([]float64, n)
	for i, j := range idx {
		pred[i] = model.Points[j].Y
	}
	r2 := rSquared(ys, pred)
	if math.IsNaN(r2) {
		return nil, newError(MATH_ERROR, "r-squared is undefined for this input", -1)
	}
	// 粗取整可能让拟合值的残差超过总变差; R²下限截到0, 保持落在[0,1]
	if r2 < 0 {
		r2 = 0
	}
	model.RSquared = numTools.Round(r2, opts.Precision)

	// 斜率诊断量, 不参与取整
	model.SE, model.TStat, model.PValue = slopeDiag(xs, ys, pred, model.Slope)

	return model, nil
}

// Fitter 预先绑定配置, 返回可对多组数据复用的拟合函数 (data-last)
func Fitter(opts Options) func([]Point) (*Model, error) {
	return func(points []Point) (*Model, error) {
		return Fit(opts, points)
	}
}
