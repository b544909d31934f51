// Package output 负责命令行配置以及计算结果的文本/YAML 输出
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/weaming/colorchecker-go/refdata"
	"github.com/weaming/colorchecker-go/spectral"
)

// Config 命令行配置，可由 TOML 文件预置，命令行参数优先
type Config struct {
	Checker    string   `toml:"checker"`
	Observer   string   `toml:"observer"`
	Illuminant string   `toml:"illuminant"`
	ColorSpace string   `toml:"colorspace"`
	Shape      string   `toml:"shape"`
	Unweighted bool     `toml:"unweighted"`
	Compare    string   `toml:"compare"`
	Format     string   `toml:"format"`
	Tables     []string `toml:"tables"`
	Verbose    bool     `toml:"verbose"`
	List       bool     `toml:"-"`
	ConfigFile string   `toml:"-"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Checker:    refdata.GaussianChartName,
		Observer:   refdata.CIE1931Name,
		Illuminant: "D65",
		ColorSpace: "sRGB",
		Shape:      "380,780,5",
		Format:     "table",
	}
}

// LoadConfig 从 TOML 读取配置，覆盖 cfg 中出现的字段
func LoadConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("解析配置失败: %w", err)
	}
	return nil
}

// ParseShape 解析 "start,end,interval" 形式的光谱网格
func ParseShape(s string) (spectral.Shape, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return spectral.Shape{}, fmt.Errorf("光谱网格格式应为 start,end,interval: %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return spectral.Shape{}, fmt.Errorf("光谱网格 %q: %w", s, err)
		}
		v[i] = f
	}
	shape := spectral.Shape{Start: v[0], End: v[1], Interval: v[2]}
	if err := shape.Validate(); err != nil {
		return spectral.Shape{}, err
	}
	return shape, nil
}
