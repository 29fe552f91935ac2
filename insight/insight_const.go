package insight

// 洞察类型
type InsightType string

const (
	TREND_DESCRIPTION    InsightType = "TrendDescription"
	CORRELATION_STRENGTH InsightType = "CorrelationStrength"
	OUTLIER_DETECTION    InsightType = "OutlierDetection" // 预留: OutlierZScoreThreshold
	SIGNIFICANCE         InsightType = "Significance"     // 预留: PValueSignificanceLevel
)

// 分级阈值默认值
const (
	DEFAULT_RSQ_WEAK   = 0.3
	DEFAULT_RSQ_STRONG = 0.7
	DEFAULT_P_LEVEL    = 0.05 // 预留
	DEFAULT_OUTLIER_Z  = 3.0  // 预留
)
