package linreg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"trendins/ml/linreg"
	"trendins/utils/numTools"
)

func fp(v float64) *float64 { return &v }

func TestFitPerfectLine(t *testing.T) {
	logrus.SetLevel(logrus.DebugLevel)

	points := []linreg.Point{
		{X: 1, Y: fp(2)}, {X: 2, Y: fp(4)}, {X: 3, Y: fp(6)}, {X: 4, Y: fp(8)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.NoError(t, err)

	require.InDelta(t, 2, model.Slope, 1e-12)
	require.InDelta(t, 0, model.Intercept, 1e-12)
	require.InDelta(t, 1, model.RSquared, 1e-12)
	require.Equal(t, linreg.METHOD_LINEAR, model.Method)
	require.Equal(t, 4, model.NObs)
	require.Len(t, model.Points, 4)
	for i, p := range points {
		require.InDelta(t, p.X, model.Points[i].X, 1e-12)
		require.InDelta(t, 2*p.X, model.Points[i].Y, 1e-12)
	}

	// 零残差完美拟合: SE为0, t/p无定义
	require.Zero(t, model.SE)
	require.True(t, math.IsNaN(model.TStat))
	require.True(t, math.IsNaN(model.PValue))
}

func TestFitInsufficientData(t *testing.T) {
	for _, points := range [][]linreg.Point{
		nil,
		{},
		{{X: 5, Y: fp(10)}},
		{{X: 1, Y: fp(1)}, {X: 2}, {X: 3}}, // y缺失的点不计入有效样本
	} {
		model, err := linreg.Fit(linreg.Options{}, points)
		require.Nil(t, model)
		require.ErrorIs(t, err, &linreg.Error{Kind: linreg.INSUFFICIENT_DATA})
	}
}

func TestFitDegenerateVertical(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(1)}, {X: 1, Y: fp(2)}, {X: 1, Y: fp(3)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.Nil(t, model)

	var regErr *linreg.Error
	require.ErrorAs(t, err, &regErr)
	require.Equal(t, linreg.DEGENERATE_INPUT, regErr.Kind)
}

func TestFitInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		points []linreg.Point
		index  int
	}{
		{"nan x", []linreg.Point{{X: 1, Y: fp(2)}, {X: math.NaN(), Y: fp(3)}, {X: 3, Y: fp(4)}}, 1},
		{"inf y", []linreg.Point{{X: 1, Y: fp(2)}, {X: 2, Y: fp(3)}, {X: 3, Y: fp(math.Inf(1))}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := linreg.Fit(linreg.Options{}, tc.points)
			require.Nil(t, model)

			var regErr *linreg.Error
			require.ErrorAs(t, err, &regErr)
			require.Equal(t, linreg.INVALID_INPUT, regErr.Kind)
			require.Equal(t, tc.index, regErr.Index)
		})
	}
}

// y缺失的点不参与校验, 其x即使非法也照常产出拟合点
func TestFitSkipsValidationForMissingY(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(2)}, {X: math.NaN()}, {X: 2, Y: fp(4)}, {X: 3, Y: fp(6)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.NoError(t, err)
	require.Len(t, model.Points, 4)
	require.True(t, math.IsNaN(model.Points[1].X))
	require.True(t, math.IsNaN(model.Points[1].Y))
}

func TestFitNullYFilteringKeepsLength(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(2)}, {X: 2}, {X: 3, Y: fp(4)}, {X: 4}, {X: 5, Y: fp(6)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.NoError(t, err)

	// 只用3个有效点拟合, 输出长度仍为5, 缺失行同样给出拟合值
	require.InDelta(t, 1, model.Slope, 1e-12)
	require.InDelta(t, 1, model.Intercept, 1e-12)
	require.Equal(t, 3, model.NObs)
	require.Len(t, model.Points, 5)
	require.InDelta(t, 3, model.Points[1].Y, 1e-12)
	require.InDelta(t, 5, model.Points[3].Y, 1e-12)
}

func TestFitPrecision(t *testing.T) {
	points := []linreg.Point{
		{X: 0, Y: fp(1)}, {X: 1, Y: fp(2)}, {X: 2, Y: fp(4)},
	}
	model, err := linreg.Fit(linreg.Options{Precision: numTools.Places(2)}, points)
	require.NoError(t, err)
	require.InDelta(t, 1.5, model.Slope, 1e-12)
	require.InDelta(t, 0.83, model.Intercept, 1e-12) // 5/6 截到两位
}

// 预测必须用原始x相乘, 取整只作用在输出上
func TestPredictRoundsOutputOnly(t *testing.T) {
	points := []linreg.Point{
		{X: 0, Y: fp(0)}, {X: 1, Y: fp(2)}, {X: 2, Y: fp(4)},
	}
	model, err := linreg.Fit(linreg.Options{Precision: numTools.Places(0)}, points)
	require.NoError(t, err)

	// 0.6 先取整再乘会得到 2; 正确顺序是 round(2*0.6)=1
	p := model.Predict(0.6)
	require.InDelta(t, 1, p.X, 1e-12)
	require.InDelta(t, 1, p.Y, 1e-12)
}

func TestFitAllEqualYPerfect(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(5)}, {X: 2, Y: fp(5)}, {X: 3, Y: fp(5)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.NoError(t, err)

	// SStot=0 且零残差 ⇒ R²取1而非NaN
	require.Zero(t, model.Slope)
	require.InDelta(t, 5, model.Intercept, 1e-12)
	require.InDelta(t, 1, model.RSquared, 1e-12)
}

// 取整把截距压到0之后观测值方差为0但残差非0, R²无定义
func TestFitRoundingMakesRSquaredUndefined(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(0.4)}, {X: 2, Y: fp(0.4)}, {X: 3, Y: fp(0.4)},
	}
	model, err := linreg.Fit(linreg.Options{Precision: numTools.Places(0)}, points)
	require.Nil(t, model)

	var regErr *linreg.Error
	require.ErrorAs(t, err, &regErr)
	require.Equal(t, linreg.MATH_ERROR, regErr.Kind)
}

// 取整后的系数可能让残差超过总变差, R²不取负值而是截到0
func TestFitRoundingClampsRSquared(t *testing.T) {
	points := []linreg.Point{
		{X: 0, Y: fp(0.4)}, {X: 1, Y: fp(0.6)},
	}
	model, err := linreg.Fit(linreg.Options{Precision: numTools.Places(0)}, points)
	require.NoError(t, err)

	require.Zero(t, model.Slope)
	require.Zero(t, model.Intercept)
	require.Zero(t, model.RSquared)
}

func TestFitDiagnostics(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(2.1)}, {X: 2, Y: fp(4.2)}, {X: 3, Y: fp(5.8)}, {X: 4, Y: fp(8.3)},
	}
	model, err := linreg.Fit(linreg.Options{}, points)
	require.NoError(t, err)

	require.Greater(t, model.SE, 0.0)
	require.InDelta(t, model.Slope/model.SE, model.TStat, 1e-12)
	require.Greater(t, model.PValue, 0.0)
	require.Less(t, model.PValue, 1.0)
}

func TestFitIdempotent(t *testing.T) {
	points := []linreg.Point{
		{X: 1, Y: fp(2.1)}, {X: 2, Y: fp(4.2)}, {X: 3}, {X: 4, Y: fp(8.3)}, {X: 5, Y: fp(9.7)},
	}
	opts := linreg.Options{Precision: numTools.Places(4)}

	m1, err1 := linreg.Fit(opts, points)
	m2, err2 := linreg.Fit(opts, points)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, m1, m2)
}

func TestFitterDataLast(t *testing.T) {
	fit := linreg.Fitter(linreg.Options{Precision: numTools.Places(2)})

	m1, err := fit([]linreg.Point{{X: 1, Y: fp(1)}, {X: 2, Y: fp(2)}})
	require.NoError(t, err)
	require.InDelta(t, 1, m1.Slope, 1e-12)

	m2, err := fit([]linreg.Point{{X: 1, Y: fp(3)}, {X: 2, Y: fp(1)}})
	require.NoError(t, err)
	require.InDelta(t, -2, m2.Slope, 1e-12)
}

func TestErrorValueSemantics(t *testing.T) {
	_, err := linreg.Fit(linreg.Options{}, nil)
	require.EqualError(t, err, "InsufficientData: need at least 2 valid data points, got 0")
	require.False(t, errors.Is(err, &linreg.Error{Kind: linreg.MATH_ERROR}))
}
