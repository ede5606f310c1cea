// Package gesture 将手部关键点转换为平滑的镜头缩放与旋转偏移。
//
// 关键点坐标为归一化的 2D 坐标（两轴均在 [0,1]，原点在画面左上角），
// 下标沿用 MediaPipe Hand Landmarker 的 21 点约定。
package gesture

import "math"

// 手部关键点下标
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexTip  = 8
	MiddleMCP = 9

	// LandmarkCount 一只手的关键点数量
	LandmarkCount = 21
)

// Landmark 归一化的 2D 关键点
type Landmark struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Hand 一只手的有序关键点序列
type Hand []Landmark

// Valid 报告关键点数量是否完整
func (h Hand) Valid() bool {
	return len(h) >= LandmarkCount
}

// PinchDistance 返回拇指尖与食指尖之间的欧氏距离
func (h Hand) PinchDistance() float64 {
	a, b := h[ThumbTip], h[IndexTip]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PalmCenter 用手腕与中指根部的中点估计掌心位置
func (h Hand) PalmCenter() (float64, float64) {
	a, b := h[Wrist], h[MiddleMCP]
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// NewHand 构造一只手：palm 为掌心位置，pinch 为拇指尖与食指尖的距离
// 其余关键点放在掌心，用于合成输入（鼠标、触摸、测试）
func NewHand(palmX, palmY, pinch float64) Hand {
	h := make(Hand, LandmarkCount)
	for i := range h {
		h[i] = Landmark{X: palmX, Y: palmY}
	}
	h[ThumbTip] = Landmark{X: palmX - pinch/2, Y: palmY}
	h[IndexTip] = Landmark{X: palmX + pinch/2, Y: palmY}
	return h
}
