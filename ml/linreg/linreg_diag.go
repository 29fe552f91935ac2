package linreg

import (
	"math"

	"github.com/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// slopeDiag 斜率的标准误/t统计量/双尾p值 (Student-t, df=n-2)
// 样本不足或x无离散时三项均为NaN; 零残差完美拟合时t/p无定义
func slopeDiag(xs, ys, pred []float64, slope float64) (se, tStat, pValue float64) {
	n := float64(len(xs))
	df := n - 2
	if df <= 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	meanX := stat.Mean(xs, nil)
	var ssx, sse float64
	for i := range xs {
		dx := xs[i] - meanX
		ssx += dx * dx
		r := ys[i] - pred[i]
		sse += r * r
	}
	if ssx == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	se = math.Sqrt((sse / df) / ssx)
	if se == 0 {
		return 0, math.NaN(), math.NaN()
	}

	tStat = slope / se
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue = 2 * tdist.Survival(math.Abs(tStat))
	return se, tStat, pValue
}
