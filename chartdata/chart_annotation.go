package chartdata

import (
	"fmt"
	"strconv"
	"strings"
)

// 趋势线绘制指令, 完整格式 "drawTrendLine:<m>,<b>"
const TREND_LINE_DIRECTIVE = "drawTrendLine"

// TrendLine 构造趋势线标注; m/b 按自然数值形式渲染, 不做额外取整
func TrendLine(m, b float64) string {
	return fmt.Sprintf("%s:%v,%v", TREND_LINE_DIRECTIVE, m, b)
}

// ParseTrendLine 解析趋势线标注, 供渲染端还原 m/b
func ParseTrendLine(s string) (m, b float64, ok bool) {
	rest, found := strings.CutPrefix(s, TREND_LINE_DIRECTIVE+":")
	if !found {
		return 0, 0, false
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, errM := strconv.ParseFloat(parts[0], 64)
	b, errB := strconv.ParseFloat(parts[1], 64)
	if errM != nil || errB != nil {
		return 0, 0, false
	}
	return m, b, true
}
