package insight

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"trendins/ml/linreg"
)

// FileConfig 回归与洞察的文件配置, 未出现的键保持默认
type FileConfig struct {
	Precision      *int     `yaml:"precision"`
	RSquaredWeak   *float64 `yaml:"rsquared_weak"`
	RSquaredStrong *float64 `yaml:"rsquared_strong"`
	PValueLevel    *float64 `yaml:"pvalue_level"`
	OutlierZScore  *float64 `yaml:"outlier_zscore"`
}

// 用 atomic.Value 存当前配置, 支持热更新时无锁读取
var cfgValue atomic.Value // stores *FileConfig

// LoadConfig 读取并校验yaml配置
func LoadConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c FileConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *FileConfig) validate() error {
	if c.Precision != nil && *c.Precision < 0 {
		return fmt.Errorf("invalid precision: %d", *c.Precision)
	}

	weak := orDefault(c.RSquaredWeak, DEFAULT_RSQ_WEAK)
	strong := orDefault(c.RSquaredStrong, DEFAULT_RSQ_STRONG)
	if weak < 0 || weak > 1 || strong < 0 || strong > 1 {
		return fmt.Errorf("r-squared thresholds must be in [0,1]: weak=%v strong=%v", weak, strong)
	}
	if weak > strong {
		return fmt.Errorf("weak threshold %v exceeds strong threshold %v", weak, strong)
	}

	if c.PValueLevel != nil && (*c.PValueLevel <= 0 || *c.PValueLevel >= 1) {
		return fmt.Errorf("invalid pvalue_level: %v", *c.PValueLevel)
	}
	if c.OutlierZScore != nil && *c.OutlierZScore <= 0 {
		return fmt.Errorf("invalid outlier_zscore: %v", *c.OutlierZScore)
	}
	return nil
}

// InitConfig 加载配置供全局读取; 失败时保留已生效的旧配置
func InitConfig(path string) error {
	c, err := LoadConfig(path)
	if err != nil {
		logrus.Warnf("insight: config load failed: %v", err)
		return err
	}
	cfgValue.Store(c)
	return nil
}

// ConfigOptions 当前配置对应的洞察选项; 未初始化时全为默认
func ConfigOptions() Options {
	cAny := cfgValue.Load()
	if cAny == nil {
		return Options{}
	}
	c := cAny.(*FileConfig)
	return Options{
		RSquaredThresholdWeak:   c.RSquaredWeak,
		RSquaredThresholdStrong: c.RSquaredStrong,
		PValueSignificanceLevel: c.PValueLevel,
		OutlierZScoreThreshold:  c.OutlierZScore,
	}
}

// ConfigRegressionOptions 当前配置对应的回归选项
func ConfigRegressionOptions() linreg.Options {
	cAny := cfgValue.Load()
	if cAny == nil {
		return linreg.Options{}
	}
	c := cAny.(*FileConfig)
	return linreg.Options{Precision: c.Precision}
}
