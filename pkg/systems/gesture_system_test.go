package systems

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
)

// pinchRecording 一帧：手在画面右侧，完全张开
func pinchRecording() *gesture.Recording {
	return &gesture.Recording{
		IntervalMs: 1,
		Frames: []gesture.RecordedFrame{
			{Palm: &gesture.Landmark{X: 1, Y: 0.5}, Pinch: 0.25},
		},
	}
}

// TestGestureSystem_Unavailable 未配置传感器时开关无效
func TestGestureSystem_Unavailable(t *testing.T) {
	cam := NewCameraSystem(35, 35)
	gs := NewGestureSystem(context.Background(), nil, cam)
	if gs.Available() {
		t.Error("Available() 应为 false")
	}
	if gs.Toggle() {
		t.Error("没有传感器时不应开启")
	}
	gs.Update(1.0 / 60)
	if cam.TargetDistance() != 35 {
		t.Errorf("镜头目标被修改: %v", cam.TargetDistance())
	}
}

// TestGestureSystem_DrivesCamera 开启后手势值写入镜头，关闭后保持冻结的值
func TestGestureSystem_DrivesCamera(t *testing.T) {
	cam := NewCameraSystem(35, 35)
	rec := pinchRecording()
	session := gesture.NewSession(gesture.NewReplaySensor(rec), nil, rec.Interval())
	gs := NewGestureSystem(context.Background(), session, cam)

	if !gs.Toggle() || !gs.Enabled() {
		t.Fatal("Toggle 后应开启")
	}

	deadline := time.Now().Add(2 * time.Second)
	for session.Frames() < 60 {
		if time.Now().After(deadline) {
			t.Fatalf("等待超时, frames=%d", session.Frames())
		}
		time.Sleep(time.Millisecond)
	}

	if gs.Toggle() {
		t.Fatal("再次 Toggle 后应关闭")
	}
	if st, _ := gs.Status(); st != gesture.StatusIdle {
		t.Errorf("关闭后状态 = %v, 期望 idle", st)
	}

	frozen := gs.Values()
	gs.Update(1.0 / 60)
	// 缩放接近 2.5：目标距离 35/2.5 = 14
	if math.Abs(cam.TargetDistance()-35/frozen.Zoom) > 1e-9 || frozen.Zoom < 2.4 {
		t.Errorf("目标距离 = %v, zoom = %v", cam.TargetDistance(), frozen.Zoom)
	}
	if cam.Camera().Yaw <= 0 {
		t.Errorf("手在右侧时 yaw 应为正, got %v", cam.Camera().Yaw)
	}

	gs.Update(1.0 / 60)
	if gs.Values() != frozen {
		t.Error("关闭后手势值不应变化")
	}
}
