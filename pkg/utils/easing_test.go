package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if eased := EaseOutCubic(p); eased <= p {
				t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值 %v（开始快）", p, eased, p)
			}
		}
	})
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"t=0返回a", 35, 17.5, 0, 35},
		{"t=1返回b", 35, 17.5, 1, 17.5},
		{"镜头每帧5%", 40, 35, 0.05, 39.75},
		{"反向", 10, 0, 0.5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

// TestClamp 测试截断
func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"范围内", 50, 50},
		{"低于下限", 1, 5},
		{"高于上限", 140, 100},
		{"等于边界", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, 5, 100); got != tt.want {
				t.Errorf("Clamp(%v, 5, 100) = %v, 期望 %v", tt.v, got, tt.want)
			}
		})
	}
}

// TestWrapIndex 测试下标环绕
func TestWrapIndex(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want int
	}{
		{"范围内", 3, 8, 3},
		{"末尾后回到开头", 8, 8, 0},
		{"开头前回到末尾", -1, 8, 7},
		{"多圈", 17, 8, 1},
		{"空序列", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapIndex(tt.i, tt.n); got != tt.want {
				t.Errorf("WrapIndex(%d, %d) = %d, 期望 %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}
