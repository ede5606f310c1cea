// Package morph 实现粒子坐标的形变插值。
//
// Engine 持有 current / target 两个等长缓冲：每次 Tick 让 current 的每个分量
// 按固定比例向 target 逼近（指数衰减，rate <= 1 时不会越过目标）。
// Engine 不是并发安全的，由单个渲染循环驱动。
package morph

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Epsilon 分量被视为已到位的距离阈值
const Epsilon float32 = 1e-3

// Engine 形变引擎
type Engine struct {
	current []float32
	target  []float32
}

// NewEngine 用初始形状创建引擎，current 与 target 相同，首次切换前不会产生运动
func NewEngine(initial []float32) *Engine {
	e := &Engine{
		current: make([]float32, len(initial)),
		target:  make([]float32, len(initial)),
	}
	copy(e.current, initial)
	copy(e.target, initial)
	return e
}

// Count 返回粒子数量
func (e *Engine) Count() int {
	return len(e.current) / 3
}

// Current 返回当前坐标缓冲（只读视图，调用方不得修改）
func (e *Engine) Current() []float32 {
	return e.current
}

// Target 返回目标坐标缓冲（只读视图）
func (e *Engine) Target() []float32 {
	return e.target
}

// SetTarget 整体替换目标缓冲，current 保持不变，下一次 Tick 开始形变
//
// buf 会被复制，调用方之后修改 buf 不影响引擎。长度必须与 current 一致。
func (e *Engine) SetTarget(buf []float32) error {
	if len(buf) != len(e.target) {
		return fmt.Errorf("target length %d does not match buffer length %d", len(buf), len(e.target))
	}
	next := make([]float32, len(buf))
	copy(next, buf)
	e.target = next
	return nil
}

// Tick 推进一帧形变
//
// 对每个分量，若 |target-current| > Epsilon，则 current += (target-current)*rate。
// rate 被限制在 (0, 1]，rate <= 0 时不移动。
//
// 返回：本帧是否有分量发生移动（调用方据此标记缓冲需要上传）
func (e *Engine) Tick(rate float32) bool {
	if rate <= 0 {
		return false
	}
	rate = math32.Min(rate, 1)

	moved := false
	cur := e.current
	tgt := e.target
	for i := range cur {
		dist := tgt[i] - cur[i]
		if math32.Abs(dist) > Epsilon {
			cur[i] += dist * rate
			moved = true
		}
	}
	return moved
}

// Settled 报告所有分量是否都已在 Epsilon 以内
func (e *Engine) Settled() bool {
	for i := range e.current {
		if math32.Abs(e.target[i]-e.current[i]) > Epsilon {
			return false
		}
	}
	return true
}

// MaxDistance 返回 current 与 target 之间最大的分量距离
func (e *Engine) MaxDistance() float32 {
	var maxDist float32
	for i := range e.current {
		if d := math32.Abs(e.target[i] - e.current[i]); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}
