package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/mathcloud/internal/morph"
	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/view"
)

// ParticleSystem 持有粒子位置与颜色，负责形变和模型自转
//
// 位置缓冲由 morph.Engine 逐帧插值；颜色在形状切换时整体重算。
type ParticleSystem struct {
	engine *morph.Engine
	colors *morph.ColorBuffer
	rng    *rand.Rand
	speed  float32

	model   view.Model
	elapsed float64 // 累计时间（秒），用于 X 轴摆动

	current shape.Type
	dirty   bool // 位置或颜色有变化，渲染端需要重新上传
}

// NewParticleSystem 创建粒子系统，初始形状立即成形（不经过插值）
//
// 参数：
//   - seq: 形状序列配置（粒子数量、插值速度）
//   - initial: 初始形状
//   - rng: 随机源，为 nil 时使用形状生成器的默认随机源
func NewParticleSystem(seq *config.SequenceConfig, initial config.ShapeConfig, rng *rand.Rand) *ParticleSystem {
	ps := &ParticleSystem{
		engine:  morph.NewEngine(shape.Generate(initial.Type, seq.ParticleCount, rng)),
		colors:  morph.NewColorBuffer(seq.ParticleCount),
		rng:     rng,
		speed:   float32(seq.TransitionSpeed),
		current: initial.Type,
		dirty:   true,
	}
	ps.colors.Recolor(initial.BaseColor, rng)
	log.Printf("[Particles] %d 个粒子，初始形状 %s", seq.ParticleCount, initial.Type.DisplayName())
	return ps
}

// OnShapeSelected 切换目标形状并重算颜色；可直接注册到 PlaybackSystem
func (ps *ParticleSystem) OnShapeSelected(sc config.ShapeConfig) {
	target := shape.Generate(sc.Type, ps.engine.Count(), ps.rng)
	if err := ps.engine.SetTarget(target); err != nil {
		log.Printf("[Particles] 设置目标形状失败: %v", err)
		return
	}
	ps.colors.Recolor(sc.BaseColor, ps.rng)
	ps.current = sc.Type
	ps.dirty = true
}

// Update 推进一帧：位置向目标插值，模型继续自转
func (ps *ParticleSystem) Update(dt float64) {
	if ps.engine.Tick(ps.speed) {
		ps.dirty = true
	}

	ps.elapsed += dt
	ps.model.RotY += config.ModelSpinY
	ps.model.RotZ += config.ModelSpinZ
	ps.model.RotX = math.Sin(ps.elapsed*config.ModelTiltFrequency) * config.ModelTiltAmplitude
}

// Positions 返回当前位置缓冲（只读）
func (ps *ParticleSystem) Positions() []float32 {
	return ps.engine.Current()
}

// Colors 返回颜色缓冲（只读）
func (ps *ParticleSystem) Colors() []float32 {
	return ps.colors.Colors()
}

// Count 粒子数量
func (ps *ParticleSystem) Count() int {
	return ps.engine.Count()
}

// Model 返回当前模型旋转
func (ps *ParticleSystem) Model() view.Model {
	return ps.model
}

// Shape 返回当前目标形状
func (ps *ParticleSystem) Shape() shape.Type {
	return ps.current
}

// Settled 形变是否已完成
func (ps *ParticleSystem) Settled() bool {
	return ps.engine.Settled()
}

// Dirty 报告自上次 ClearDirty 以来缓冲是否有变化
func (ps *ParticleSystem) Dirty() bool {
	return ps.dirty
}

// ClearDirty 渲染端上传缓冲后调用
func (ps *ParticleSystem) ClearDirty() {
	ps.dirty = false
}
