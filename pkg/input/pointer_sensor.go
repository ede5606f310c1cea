package input

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultPinch 初始捏合距离，对应缩放 1.0
	DefaultPinch = 0.1

	// WheelPinchStep 滚轮每格改变的捏合距离
	WheelPinchStep = 0.01

	// maxPinch 捏合距离上限（略大于满缩放，保留余量）
	maxPinch = 0.3

	// touchPinchScale 两指间距占画面短边的比例 → 捏合距离
	touchPinchScale = 0.3
)

// PointerSample 一帧的指针采样（像素坐标）
type PointerSample struct {
	X, Y          float64 // 指针或两指中点
	Width, Height int     // 画面尺寸
	WheelY        float64 // 滚轮增量，向上为正
	TouchDistance float64 // 两指间距，0 表示没有两指触摸
}

// PointerSensor 用鼠标或触摸模拟手部关键点的手势传感器
//
// 指针位置映射为掌心，滚轮或两指间距映射为拇指与食指的距离。
// 指针离开画面时视为没有检测到手。
// Poll/Feed 在游戏循环中调用，Detect 在手势会话的采集 goroutine 中调用。
type PointerSensor struct {
	mu      sync.Mutex
	palmX   float64
	palmY   float64
	pinch   float64
	present bool
}

// NewPointerSensor 创建指针手势传感器
func NewPointerSensor() *PointerSensor {
	return &PointerSensor{pinch: DefaultPinch}
}

// Poll 从 ebiten 采样指针状态（在 Update 中调用）
func (s *PointerSensor) Poll(width, height int) {
	sample := PointerSample{Width: width, Height: height}
	if cx, cy, dist, ok := TwoFingerPinch(); ok {
		sample.X, sample.Y = cx, cy
		sample.TouchDistance = dist
	} else {
		x, y := ebiten.CursorPosition()
		if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
			x, y = ebiten.TouchPosition(ids[0])
		}
		sample.X, sample.Y = float64(x), float64(y)
		_, sample.WheelY = ebiten.Wheel()
	}
	s.Feed(sample)
}

// Feed 写入一帧采样
func (s *PointerSensor) Feed(sample PointerSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sample.Width <= 0 || sample.Height <= 0 {
		s.present = false
		return
	}
	s.present = sample.X >= 0 && sample.Y >= 0 &&
		sample.X <= float64(sample.Width) && sample.Y <= float64(sample.Height)
	s.palmX = sample.X / float64(sample.Width)
	s.palmY = sample.Y / float64(sample.Height)

	switch {
	case sample.TouchDistance > 0:
		short := float64(min(sample.Width, sample.Height))
		s.pinch = sample.TouchDistance / short * touchPinchScale
	case sample.WheelY != 0:
		s.pinch += sample.WheelY * WheelPinchStep
	}
	s.pinch = utils.Clamp(s.pinch, 0, maxPinch)
}

// Pinch 返回当前模拟的捏合距离
func (s *PointerSensor) Pinch() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinch
}

// Initialize 实现 gesture.Sensor 接口
func (s *PointerSensor) Initialize(ctx context.Context) (gesture.Detector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &pointerDetector{sensor: s}, nil
}

// snapshot 返回当前帧合成的手
func (s *PointerSensor) snapshot() []gesture.Hand {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil
	}
	return []gesture.Hand{gesture.NewHand(s.palmX, s.palmY, s.pinch)}
}

type pointerDetector struct {
	sensor *PointerSensor
	mu     sync.Mutex
	closed bool
}

func (d *pointerDetector) Detect(time.Duration) ([]gesture.Hand, error) {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return nil, errors.New("pointer detector closed")
	}
	return d.sensor.snapshot(), nil
}

func (d *pointerDetector) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}
