package linreg

import (
	"math"

	"github.com/gonum/stat"
)

// rSquared 决定系数 1 - SSres/SStot
// SStot==0 时: 零残差为完美拟合返回1, 有残差则无定义返回NaN
// 无有效观测返回NaN
func rSquared(obs, pred []float64) float64 {
	if len(obs) == 0 {
		return math.NaN()
	}

	meanY := stat.Mean(obs, nil)
	var ssTot, ssRes float64
	for i, y := range obs {
		d := y - meanY
		ssTot += d * d
		r := y - pred[i]
		ssRes += r * r
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}
