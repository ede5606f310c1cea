package systems

import (
	"math"
	"testing"

	"github.com/decker502/mathcloud/pkg/config"
)

// TestCameraSystem_LerpToTarget 距离每帧按 5% 靠近目标
func TestCameraSystem_LerpToTarget(t *testing.T) {
	cs := NewCameraSystem(40, 35)
	cs.Update(1.0 / 60)
	if want := 40 + (35-40)*0.05; math.Abs(cs.Distance()-want) > 1e-9 {
		t.Errorf("一帧后距离 = %v, 期望 %v", cs.Distance(), want)
	}

	for i := 0; i < 300; i++ {
		cs.Update(1.0 / 60)
	}
	if math.Abs(cs.Distance()-35) > 0.01 {
		t.Errorf("300 帧后距离 = %v, 期望接近 35", cs.Distance())
	}
}

// TestCameraSystem_TargetDistance 目标距离 = cameraZ / zoom，截断到 [5, 100]
func TestCameraSystem_TargetDistance(t *testing.T) {
	tests := []struct {
		name string
		base float64
		zoom float64
		want float64
	}{
		{"无缩放", 35, 1, 35},
		{"放大2倍距离减半", 30, 2, 15},
		{"缩小到0.5倍", 45, 0.5, 90},
		{"下限截断", 25, 10, config.MinCameraDistance},
		{"上限截断", 45, 0.2, config.MaxCameraDistance},
		{"非法缩放按1处理", 35, 0, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCameraSystem(tt.base, tt.base)
			cs.SetZoom(tt.zoom)
			if got := cs.TargetDistance(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TargetDistance() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

// TestCameraSystem_DistanceStaysInRange 任何时候距离都在允许范围内
func TestCameraSystem_DistanceStaysInRange(t *testing.T) {
	cs := NewCameraSystem(500, 45)
	if cs.Distance() != config.MaxCameraDistance {
		t.Errorf("初始距离 = %v, 期望截断到 %v", cs.Distance(), config.MaxCameraDistance)
	}
	cs.SetZoom(100)
	for i := 0; i < 500; i++ {
		cs.Update(1.0 / 60)
		if d := cs.Distance(); d < config.MinCameraDistance || d > config.MaxCameraDistance {
			t.Fatalf("第 %d 帧距离 %v 越界", i, d)
		}
	}
}

// TestCameraSystem_ShapeChange 切换形状改变基础距离
func TestCameraSystem_ShapeChange(t *testing.T) {
	cs := NewCameraSystem(35, 35)
	cs.OnShapeSelected(config.ShapeConfig{CameraZ: 25})
	if cs.TargetDistance() != 25 {
		t.Errorf("TargetDistance() = %v, 期望 25", cs.TargetDistance())
	}
}

// TestCameraSystem_AutoRotate 只有开启自动旋转时 yaw 才变化
func TestCameraSystem_AutoRotate(t *testing.T) {
	cs := NewCameraSystem(35, 35)
	cs.Update(1)
	if cs.Camera().Yaw != 0 {
		t.Errorf("未开启自动旋转时 yaw = %v, 期望 0", cs.Camera().Yaw)
	}

	cs.SetAutoRotate(true)
	cs.Update(2)
	if want := 2 * config.AutoRotateSpeed; math.Abs(cs.Camera().Yaw-want) > 1e-9 {
		t.Errorf("yaw = %v, 期望 %v", cs.Camera().Yaw, want)
	}
}

// TestCameraSystem_OrbitClampsPitch 拖拽时俯仰角不越过极点
func TestCameraSystem_OrbitClampsPitch(t *testing.T) {
	cs := NewCameraSystem(35, 35)
	cs.Orbit(100, 0)
	if want := -100 * config.DragRotateSpeed; math.Abs(cs.Camera().Yaw-want) > 1e-9 {
		t.Errorf("yaw = %v, 期望 %v", cs.Camera().Yaw, want)
	}
	cs.Orbit(0, 1e6)
	if cs.Camera().Pitch != config.MaxPitch {
		t.Errorf("pitch = %v, 期望 %v", cs.Camera().Pitch, config.MaxPitch)
	}
	cs.Orbit(0, -1e6)
	if cs.Camera().Pitch != -config.MaxPitch {
		t.Errorf("pitch = %v, 期望 %v", cs.Camera().Pitch, -config.MaxPitch)
	}
}

// TestCameraSystem_GestureOffset 手势偏移叠加到角度上
func TestCameraSystem_GestureOffset(t *testing.T) {
	cs := NewCameraSystem(35, 35)
	cs.SetGestureOffset(0.5, 3)
	cam := cs.Camera()
	if want := 0.5 * config.GestureYawRange; math.Abs(cam.Yaw-want) > 1e-9 {
		t.Errorf("yaw = %v, 期望 %v", cam.Yaw, want)
	}
	// y 截断到 1，手在画面下方时镜头向下
	if want := -config.GesturePitchRange; math.Abs(cam.Pitch-want) > 1e-9 {
		t.Errorf("pitch = %v, 期望 %v", cam.Pitch, want)
	}
	if cam.FOV != config.FieldOfView {
		t.Errorf("FOV = %v, 期望 %v", cam.FOV, config.FieldOfView)
	}
}

// TestCameraSystem_Dolly 滚轮缩放受距离范围约束，可重置
func TestCameraSystem_Dolly(t *testing.T) {
	cs := NewCameraSystem(40, 40)
	cs.Dolly(0.5)
	if cs.TargetDistance() != 20 {
		t.Errorf("Dolly(0.5) 后目标 = %v, 期望 20", cs.TargetDistance())
	}
	cs.Dolly(100)
	if cs.TargetDistance() != config.MaxCameraDistance {
		t.Errorf("目标 = %v, 期望 %v", cs.TargetDistance(), config.MaxCameraDistance)
	}
	cs.ResetDolly()
	if cs.TargetDistance() != 40 {
		t.Errorf("ResetDolly 后目标 = %v, 期望 40", cs.TargetDistance())
	}
}
