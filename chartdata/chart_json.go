package chartdata

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"trendins/ml/linreg"
)

// ParsePoints 解析图表payload中的数据点序列
// 支持对象数组 [{"x":1,"y":2},...] 与坐标对数组 [[1,2],...]
// y 为 null 或缺失时记为缺失点, 交给回归层过滤
func ParsePoints(raw string) ([]linreg.Point, error) {
	doc := gjson.Parse(raw)
	if !doc.IsArray() {
		return nil, fmt.Errorf("chartdata: expected a json array, got %v", doc.Type)
	}

	items := doc.Array()
	points := make([]linreg.Point, 0, len(items))
	for i, item := range items {
		switch {
		case item.IsObject():
			// x必须是数值, null/字符串一律拒绝, 不允许悄悄变成0
			x := item.Get("x")
			if x.Type != gjson.Number {
				return nil, fmt.Errorf("chartdata: element %d has no numeric x", i)
			}
			p := linreg.Point{X: x.Float()}
			y, err := optionalY(item.Get("y"), i)
			if err != nil {
				return nil, err
			}
			p.Y = y
			points = append(points, p)
		case item.IsArray():
			pair := item.Array()
			if len(pair) == 0 {
				return nil, fmt.Errorf("chartdata: element %d is an empty pair", i)
			}
			if pair[0].Type != gjson.Number {
				return nil, fmt.Errorf("chartdata: element %d has no numeric x", i)
			}
			p := linreg.Point{X: pair[0].Float()}
			if len(pair) > 1 {
				y, err := optionalY(pair[1], i)
				if err != nil {
					return nil, err
				}
				p.Y = y
			}
			points = append(points, p)
		default:
			return nil, fmt.Errorf("chartdata: element %d is neither object nor pair", i)
		}
	}

	logrus.Debugf("chartdata: parsed %d points", len(points))
	return points, nil
}

// optionalY y只接受数值或null/缺失(记为缺失点), 其他类型报错
func optionalY(y gjson.Result, index int) (*float64, error) {
	switch y.Type {
	case gjson.Number:
		v := y.Float()
		return &v, nil
	case gjson.Null:
		// 不存在的键Type同样是Null
		return nil, nil
	default:
		return nil, fmt.Errorf("chartdata: element %d has non-numeric y", index)
	}
}

// PointsAt 从文档指定路径提取数据点, 如 "series.0.data"
func PointsAt(doc, path string) ([]linreg.Point, error) {
	res := gjson.Get(doc, path)
	if !res.Exists() {
		return nil, fmt.Errorf("chartdata: path %q not found", path)
	}
	return ParsePoints(res.Raw)
}
