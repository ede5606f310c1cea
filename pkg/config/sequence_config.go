package config

import (
	"fmt"

	"github.com/decker502/mathcloud/internal/morph"
	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSequencePath 内置形状序列配置的路径
const DefaultSequencePath = "data/sequence.yaml"

// ShapeConfig 单个形状的展示配置
type ShapeConfig struct {
	TypeName string  `yaml:"type"`    // 形状名称，如 "vortex"
	Color    string  `yaml:"color"`   // 基础色 "#rrggbb"
	CameraZ  float64 `yaml:"cameraZ"` // 镜头基础距离

	// 以下字段在加载时由 TypeName/Color 解析得到
	Type      shape.Type `yaml:"-"`
	BaseColor morph.RGB  `yaml:"-"`
}

// SequenceConfig 形状序列配置文件结构
type SequenceConfig struct {
	ParticleCount   int           `yaml:"particleCount"`   // 粒子数量
	TransitionSpeed float64       `yaml:"transitionSpeed"` // 每帧插值比例 (0, 1]
	AutoSwitchMs    int           `yaml:"autoSwitchMs"`    // 自动切换间隔（毫秒）
	Shapes          []ShapeConfig `yaml:"shapes"`          // 播放顺序
}

// DefaultSequenceConfig 返回内置的默认序列（与 data/sequence.yaml 一致）
func DefaultSequenceConfig() *SequenceConfig {
	cfg := &SequenceConfig{
		ParticleCount:   shape.DefaultParticleCount,
		TransitionSpeed: 0.02,
		AutoSwitchMs:    8000,
		Shapes: []ShapeConfig{
			{TypeName: "vortex", Color: "#4f46e5", CameraZ: 35},
			{TypeName: "koch", Color: "#06b6d4", CameraZ: 40},
			{TypeName: "cardioid", Color: "#db2777", CameraZ: 25},
			{TypeName: "butterfly", Color: "#9333ea", CameraZ: 30},
			{TypeName: "archimedes", Color: "#ea580c", CameraZ: 45},
			{TypeName: "catenary", Color: "#16a34a", CameraZ: 35},
			{TypeName: "lemniscate", Color: "#facc15", CameraZ: 30},
			{TypeName: "rose", Color: "#dc2626", CameraZ: 25},
		},
	}
	if err := validateSequenceConfig(cfg); err != nil {
		panic(fmt.Sprintf("default sequence config is invalid: %v", err))
	}
	return cfg
}

// LoadSequenceConfig 从 YAML 文件加载形状序列配置
// 参数：
//
//	filepath - 配置文件路径；"data/" 开头从嵌入资源读取，否则从磁盘读取
//
// 返回：
//
//	*SequenceConfig - 解析并校验后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadSequenceConfig(filepath string) (*SequenceConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence config %s: %w", filepath, err)
	}

	cfg, err := ParseSequenceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseSequenceConfig 解析并校验 YAML 内容
func ParseSequenceConfig(data []byte) (*SequenceConfig, error) {
	var cfg SequenceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sequence YAML: %w", err)
	}
	if err := validateSequenceConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid sequence config: %w", err)
	}
	return &cfg, nil
}

// validateSequenceConfig 验证配置的合法性，并填充解析后的字段
func validateSequenceConfig(cfg *SequenceConfig) error {
	if cfg.ParticleCount <= 0 {
		return fmt.Errorf("particleCount must be positive, got %d", cfg.ParticleCount)
	}
	if cfg.TransitionSpeed <= 0 || cfg.TransitionSpeed > 1 {
		return fmt.Errorf("transitionSpeed must be in (0, 1], got %v", cfg.TransitionSpeed)
	}
	if cfg.AutoSwitchMs <= 0 {
		return fmt.Errorf("autoSwitchMs must be positive, got %d", cfg.AutoSwitchMs)
	}
	if len(cfg.Shapes) == 0 {
		return fmt.Errorf("at least one shape is required")
	}

	for i := range cfg.Shapes {
		sc := &cfg.Shapes[i]
		t, ok := shape.Parse(sc.TypeName)
		if !ok {
			return fmt.Errorf("shape %d: unknown type %q", i, sc.TypeName)
		}
		rgb, err := morph.RGBFromHex(sc.Color)
		if err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sc.TypeName, err)
		}
		if sc.CameraZ <= 0 {
			return fmt.Errorf("shape %d (%s): cameraZ must be positive, got %v", i, sc.TypeName, sc.CameraZ)
		}
		sc.Type = t
		sc.BaseColor = rgb
	}
	return nil
}

// IndexOf 返回形状在序列中的位置，不存在时返回 -1
func (c *SequenceConfig) IndexOf(t shape.Type) int {
	for i, sc := range c.Shapes {
		if sc.Type == t {
			return i
		}
	}
	return -1
}

// WithParticleCount 返回粒子数量被覆盖后的副本（命令行 -count）
func (c *SequenceConfig) WithParticleCount(count int) *SequenceConfig {
	cp := *c
	cp.Shapes = append([]ShapeConfig(nil), c.Shapes...)
	if count > 0 {
		cp.ParticleCount = count
	}
	return &cp
}
