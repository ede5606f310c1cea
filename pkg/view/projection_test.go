package view

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

// TestProject_Origin 原点投影到画面中心，深度等于镜头距离
func TestProject_Origin(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
	}{
		{"正面", Camera{Distance: 35, FOV: 60}},
		{"侧面", Camera{Distance: 20, Yaw: math.Pi / 2, FOV: 60}},
		{"俯视", Camera{Distance: 50, Pitch: 1.2, FOV: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjector(tt.cam, Model{RotX: 0.3, RotY: 1, RotZ: 2}, 800, 600)
			sx, sy, depth, ok := p.Project(0, 0, 0)
			if !ok {
				t.Fatal("原点应可见")
			}
			if !near(sx, 400) || !near(sy, 300) {
				t.Errorf("原点投影 = (%v, %v), 期望 (400, 300)", sx, sy)
			}
			if !near(depth, float32(tt.cam.Distance)) {
				t.Errorf("深度 = %v, 期望 %v", depth, tt.cam.Distance)
			}
		})
	}
}

// TestProject_Axes 正面镜头下 +X 向右、+Y 向上、+Z 靠近镜头
func TestProject_Axes(t *testing.T) {
	p := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 800, 600)

	sx, _, _, _ := p.Project(1, 0, 0)
	if sx <= 400 {
		t.Errorf("+X 应在中心右侧, got sx=%v", sx)
	}
	_, sy, _, _ := p.Project(0, 1, 0)
	if sy >= 300 {
		t.Errorf("+Y 应在中心上方, got sy=%v", sy)
	}
	_, _, depth, _ := p.Project(0, 0, 1)
	if !near(depth, 9) {
		t.Errorf("+Z 深度 = %v, 期望 9", depth)
	}
}

// TestProject_FieldOfView 60° 视角下 y = d·tan30° 的点落在画面上边缘
func TestProject_FieldOfView(t *testing.T) {
	d := float32(20)
	p := NewProjector(Camera{Distance: float64(d), FOV: 60}, Model{}, 800, 600)
	_, sy, _, ok := p.Project(0, d*math32.Tan(math32.Pi/6), 0)
	if !ok || !near(sy, 0) {
		t.Errorf("sy = %v, 期望 0", sy)
	}
}

// TestProject_Yaw 镜头转到 +X 一侧后，+X 方向的点朝向镜头
func TestProject_Yaw(t *testing.T) {
	p := NewProjector(Camera{Distance: 10, Yaw: math.Pi / 2, FOV: 60}, Model{}, 800, 600)
	sx, _, depth, _ := p.Project(2, 0, 0)
	if !near(depth, 8) || !near(sx, 400) {
		t.Errorf("Project(2,0,0) = sx %v depth %v, 期望 sx 400 depth 8", sx, depth)
	}
}

// TestProject_ModelRotation 绕 Z 轴转 90° 后 +X 变为 +Y
func TestProject_ModelRotation(t *testing.T) {
	rotated := NewProjector(Camera{Distance: 10, FOV: 60}, Model{RotZ: math.Pi / 2}, 800, 600)
	plain := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 800, 600)

	ax, ay, _, _ := rotated.Project(1, 0, 0)
	bx, by, _, _ := plain.Project(0, 1, 0)
	if !near(ax, bx) || !near(ay, by) {
		t.Errorf("旋转后 = (%v, %v), 期望 (%v, %v)", ax, ay, bx, by)
	}
}

// TestProject_BehindCamera 镜头后方的点被裁剪
func TestProject_BehindCamera(t *testing.T) {
	p := NewProjector(Camera{Distance: 5, FOV: 60}, Model{}, 800, 600)
	if _, _, _, ok := p.Project(0, 0, 6); ok {
		t.Error("镜头后方的点不应可见")
	}
	if _, _, _, ok := p.Project(0, 0, 4.95); ok {
		t.Error("近裁剪面以内的点不应可见")
	}
}

// TestProject_Aspect 水平修正只影响 X
func TestProject_Aspect(t *testing.T) {
	p := NewProjector(Camera{Distance: 10, FOV: 60}, Model{}, 80, 24)
	x1, y1, _, _ := p.Project(1, 1, 0)
	p.SetAspect(2)
	x2, y2, _, _ := p.Project(1, 1, 0)
	if !near(x2-40, 2*(x1-40)) || !near(y1, y2) {
		t.Errorf("aspect=2: (%v,%v) -> (%v,%v)", x1, y1, x2, y2)
	}
}
