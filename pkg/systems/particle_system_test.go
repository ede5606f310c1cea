package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
)

// newTestParticles 创建粒子较少的粒子系统
func newTestParticles(t *testing.T, count int) (*ParticleSystem, *config.SequenceConfig) {
	t.Helper()
	seq := config.DefaultSequenceConfig().WithParticleCount(count)
	return NewParticleSystem(seq, seq.Shapes[0], rand.New(rand.NewSource(1))), seq
}

// TestParticleSystem_Initial 初始形状立即成形，颜色已填充
func TestParticleSystem_Initial(t *testing.T) {
	ps, seq := newTestParticles(t, 500)

	if ps.Count() != 500 || len(ps.Positions()) != 1500 || len(ps.Colors()) != 1500 {
		t.Fatalf("缓冲长度错误: count=%d pos=%d colors=%d", ps.Count(), len(ps.Positions()), len(ps.Colors()))
	}
	if !ps.Settled() {
		t.Error("初始形状应已成形")
	}
	if !ps.Dirty() {
		t.Error("初始缓冲需要上传")
	}
	if ps.Shape() != shape.Vortex {
		t.Errorf("初始形状 = %v, 期望 Vortex", ps.Shape())
	}

	base := seq.Shapes[0].BaseColor
	colors := ps.Colors()
	for i := 0; i < len(colors); i += 3 {
		if colors[i] > base.R || colors[i] < base.R-0.2 {
			t.Fatalf("粒子 %d 的 R = %v 超出 [%v, %v]", i/3, colors[i], base.R-0.2, base.R)
		}
	}
}

// TestParticleSystem_Morph 切换形状后逐帧收敛
func TestParticleSystem_Morph(t *testing.T) {
	ps, seq := newTestParticles(t, 300)
	ps.ClearDirty()

	rose := seq.Shapes[seq.IndexOf(shape.Rose)]
	ps.OnShapeSelected(rose)
	if ps.Shape() != shape.Rose {
		t.Errorf("目标形状 = %v, 期望 Rose", ps.Shape())
	}
	if ps.Settled() {
		t.Fatal("切换后不应立即成形")
	}
	if !ps.Dirty() {
		t.Error("颜色重算后应标记为脏")
	}

	// #dc2626 的 G/B 通道约为 0.149，重算后不超过基础色
	colors := ps.Colors()
	for i := 0; i < len(colors); i += 3 {
		if colors[i+1] > rose.BaseColor.G {
			t.Fatalf("粒子 %d 的 G = %v 大于基础色 %v", i/3, colors[i+1], rose.BaseColor.G)
		}
	}

	frames := 0
	for !ps.Settled() {
		ps.ClearDirty()
		ps.Update(1.0 / 60)
		frames++
		if frames > 1000 {
			t.Fatal("1000 帧内未完成形变")
		}
	}
	// 0.98^n·d <= 1e-3，典型距离 < 20 时 n 约 490
	if frames < 100 {
		t.Errorf("形变在 %d 帧内完成，插值速度异常", frames)
	}

	ps.ClearDirty()
	ps.Update(1.0 / 60)
	if ps.Dirty() {
		t.Error("成形后位置不再变化，不应标记为脏")
	}
}

// TestParticleSystem_ModelSpin 模型每帧自转，X 轴按正弦摆动
func TestParticleSystem_ModelSpin(t *testing.T) {
	ps, _ := newTestParticles(t, 10)
	const frames = 600
	for i := 0; i < frames; i++ {
		ps.Update(1.0 / 60)
	}
	m := ps.Model()
	if math.Abs(m.RotY-frames*config.ModelSpinY) > 1e-9 {
		t.Errorf("RotY = %v, 期望 %v", m.RotY, frames*config.ModelSpinY)
	}
	if math.Abs(m.RotZ-frames*config.ModelSpinZ) > 1e-9 {
		t.Errorf("RotZ = %v, 期望 %v", m.RotZ, frames*config.ModelSpinZ)
	}
	// 10 秒后 RotX = sin(1)·0.1
	if want := math.Sin(1) * 0.1; math.Abs(m.RotX-want) > 1e-6 {
		t.Errorf("RotX = %v, 期望 %v", m.RotX, want)
	}
}
