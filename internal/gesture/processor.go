package gesture

import "math"

// 缩放映射与平滑参数
const (
	MinPinch = 0.05 // 手指闭合时的距离
	MaxPinch = 0.25 // 手指完全张开时的距离
	MinZoom  = 0.5
	MaxZoom  = 2.5

	// smoothKeep 指数平滑中旧值的权重，新值权重为 1-smoothKeep
	smoothKeep = 0.9
)

// GestureState 平滑后的手势输出
type GestureState struct {
	Zoom      float64 // 缩放倍数，镜头距离 = 基础距离 / Zoom
	RotationX float64 // 水平偏移 [-1, 1]
	RotationY float64 // 垂直偏移 [-1, 1]
}

// DefaultGestureState 初始手势状态：不缩放、不偏移
func DefaultGestureState() GestureState {
	return GestureState{Zoom: 1}
}

// Processor 手势信号处理器
//
// 每个检测到手的视频帧调用一次 Update。没有检测到手时保持上一次的值。
// Processor 本身不加锁，并发访问由 Session 负责。
type Processor struct {
	state GestureState
}

// NewProcessor 创建处理器，初始 zoom=1，rotation=(0,0)
func NewProcessor() *Processor {
	return &Processor{state: DefaultGestureState()}
}

// TargetZoom 将捏合距离映射到目标缩放
// d 截断到 [MinPinch, MaxPinch] 后线性映射到 [MinZoom, MaxZoom]
func TargetZoom(d float64) float64 {
	d = clamp(d, MinPinch, MaxPinch)
	t := (d - MinPinch) / (MaxPinch - MinPinch)
	return MinZoom + (MaxZoom-MinZoom)*t
}

// PalmOffset 将掌心位置换算为以画面中心为原点的偏移，两轴截断到 [-1, 1]
func PalmOffset(h Hand) (float64, float64) {
	cx, cy := h.PalmCenter()
	return clamp((cx-0.5)*2, -1, 1), clamp((cy-0.5)*2, -1, 1)
}

// Update 用一帧检测结果更新平滑状态
//
// 返回：是否发生了更新（没有有效的手时返回 false，状态不变）
func (p *Processor) Update(hands []Hand) bool {
	if len(hands) == 0 || !hands[0].Valid() {
		return false
	}
	hand := hands[0]

	p.state.Zoom = smooth(p.state.Zoom, TargetZoom(hand.PinchDistance()))

	ox, oy := PalmOffset(hand)
	p.state.RotationX = smooth(p.state.RotationX, ox)
	p.state.RotationY = smooth(p.state.RotationY, oy)
	return true
}

// State 返回当前平滑状态
func (p *Processor) State() GestureState {
	return p.state
}

// Zoom 返回平滑后的缩放倍数
func (p *Processor) Zoom() float64 {
	return p.state.Zoom
}

// Rotation 返回平滑后的旋转偏移
func (p *Processor) Rotation() (float64, float64) {
	return p.state.RotationX, p.state.RotationY
}

func smooth(prev, target float64) float64 {
	return prev*smoothKeep + target*(1-smoothKeep)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
