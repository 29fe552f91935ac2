package chartdata

import (
	"math"

	"trendins/ml/linreg"
)

// HistogramBin 残差直方图的单个分箱
type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// ResidualHist 对拟合残差做分箱统计, 供仪表盘绘制残差分布
// y 缺失的点无残差, 直接跳过
func ResidualHist(model *linreg.Model, points []linreg.Point, bins int) []HistogramBin {
	if model == nil || bins <= 0 {
		return nil
	}

	resid := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Y == nil {
			continue
		}
		resid = append(resid, *p.Y-model.Predict(p.X).Y)
	}
	if len(resid) == 0 {
		return nil
	}

	// 1. 求最小值最大值
	minV, maxV := resid[0], resid[0]
	for _, v := range resid {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	// 避免 max == min 导致除0
	if maxV == minV {
		maxV = minV + 1e-9
	}

	// 2. 分箱宽度
	width := (maxV - minV) / float64(bins)

	// 3. 初始化 bins
	result := make([]HistogramBin, bins)
	for i := 0; i < bins; i++ {
		result[i] = HistogramBin{
			From: minV + float64(i)*width,
			To:   minV + float64(i+1)*width,
		}
	}

	// 4. 遍历残差并统计
	for _, v := range resid {
		idx := int(math.Floor((v - minV) / width))
		if idx >= bins { // 处理 v == maxV 的边界
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}
