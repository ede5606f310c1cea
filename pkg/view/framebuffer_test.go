package view

import "testing"

// TestFramebuffer_SplatCenter 原点处的点落在画面中心
func TestFramebuffer_SplatCenter(t *testing.T) {
	fb := NewFramebuffer(64, 48)
	proj := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 64, 48)

	drawn := fb.Splat([]float32{0, 0, 0}, []float32{1, 0.5, 0}, proj, 0.01, 1)
	if drawn != 1 {
		t.Fatalf("drawn = %d, 期望 1", drawn)
	}
	r, g, b := fb.At(32, 24)
	if r <= 0 || g <= 0 || b != 0 {
		t.Errorf("中心像素 = (%v, %v, %v), 期望红绿通道有值", r, g, b)
	}
	if r2, _, _ := fb.At(0, 0); r2 != 0 {
		t.Errorf("角落像素不应被绘制, got %v", r2)
	}
}

// TestFramebuffer_Additive 同一位置的点亮度叠加
func TestFramebuffer_Additive(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	proj := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 16, 16)

	fb.Splat([]float32{0, 0, 0}, []float32{0.2, 0.2, 0.2}, proj, 0.001, 1)
	one, _, _ := fb.At(8, 8)
	fb.Splat([]float32{0, 0, 0, 0, 0, 0}, []float32{0.2, 0.2, 0.2, 0.2, 0.2, 0.2}, proj, 0.001, 1)
	three, _, _ := fb.At(8, 8)
	if diff := three - 3*one; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("三次叠加 = %v, 期望 %v", three, 3*one)
	}
}

// TestFramebuffer_SkipsInvisible 镜头后方与画面外的点不绘制
func TestFramebuffer_SkipsInvisible(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	proj := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 16, 16)
	positions := []float32{
		0, 0, 20, // 镜头后方
		500, 0, 0, // 画面外
	}
	colors := []float32{1, 1, 1, 1, 1, 1}
	if drawn := fb.Splat(positions, colors, proj, 0.15, 1); drawn != 0 {
		t.Errorf("drawn = %d, 期望 0", drawn)
	}
}

// TestFramebuffer_WriteRGBA 通道截断并写入不透明 alpha
func TestFramebuffer_WriteRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.accum[0], fb.accum[1], fb.accum[2] = 2, 0.5, -1

	buf := make([]byte, 8)
	fb.WriteRGBA(buf)
	want := []byte{255, 128, 0, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %d, 期望 %d", i, buf[i], want[i])
		}
	}

	fb.Clear()
	if r, _, _ := fb.At(0, 0); r != 0 {
		t.Errorf("Clear 后 = %v, 期望 0", r)
	}
}

// TestFramebuffer_Resize 调整尺寸
func TestFramebuffer_Resize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Resize(8, 2)
	if fb.Width != 8 || fb.Height != 2 || len(fb.accum) != 48 {
		t.Errorf("Resize 后 %dx%d len=%d", fb.Width, fb.Height, len(fb.accum))
	}
	fb.Resize(-1, 3)
	if fb.Width != 0 || len(fb.accum) != 0 {
		t.Errorf("负尺寸应视为 0, got %dx%d", fb.Width, fb.Height)
	}
}
