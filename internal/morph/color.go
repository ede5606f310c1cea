package morph

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorVariation 每个通道随机减去的最大亮度，用于制造层次感
const ColorVariation = 0.2

// RGB 通道值 0~1
type RGB struct {
	R, G, B float32
}

// RGBFromHex 解析 "#rrggbb" 颜色
func RGBFromHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}, nil
}

// ColorBuffer 粒子颜色缓冲，长度固定为 count*3
//
// 颜色不参与插值：每次 Recolor 整体重算，切换是瞬间完成的。
type ColorBuffer struct {
	colors []float32
}

// NewColorBuffer 创建全黑的颜色缓冲
func NewColorBuffer(count int) *ColorBuffer {
	if count < 0 {
		count = 0
	}
	return &ColorBuffer{colors: make([]float32, count*3)}
}

// Colors 返回颜色缓冲（只读视图）
func (c *ColorBuffer) Colors() []float32 {
	return c.colors
}

// Recolor 以 base 为基色重算全部粒子颜色
// 每个粒子的每个通道独立减去 [0, ColorVariation) 的随机量，并截断到 0
func (c *ColorBuffer) Recolor(base RGB, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	for i := 0; i+2 < len(c.colors); i += 3 {
		c.colors[i] = math32.Max(0, base.R-rng.Float32()*ColorVariation)
		c.colors[i+1] = math32.Max(0, base.G-rng.Float32()*ColorVariation)
		c.colors[i+2] = math32.Max(0, base.B-rng.Float32()*ColorVariation)
	}
}
