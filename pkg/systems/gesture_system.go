package systems

import (
	"context"
	"log"

	"github.com/decker502/mathcloud/internal/gesture"
)

// GestureSystem 把手势会话的平滑输出接到镜头上
//
// 会话在后台 goroutine 中采集；Update 在游戏循环中读取快照。
// 关闭手势模式后保留最后的缩放与偏移，再次开启时从这些值继续。
type GestureSystem struct {
	session *gesture.Session
	camera  *CameraSystem
	ctx     context.Context
	enabled bool
}

// NewGestureSystem 创建手势系统；session 为 nil 时手势模式不可用
func NewGestureSystem(ctx context.Context, session *gesture.Session, camera *CameraSystem) *GestureSystem {
	if ctx == nil {
		ctx = context.Background()
	}
	return &GestureSystem{
		session: session,
		camera:  camera,
		ctx:     ctx,
	}
}

// Available 是否配置了手势传感器
func (gs *GestureSystem) Available() bool {
	return gs.session != nil
}

// Toggle 开关手势模式，返回切换后的状态
func (gs *GestureSystem) Toggle() bool {
	if gs.enabled {
		gs.Disable()
	} else {
		gs.Enable()
	}
	return gs.enabled
}

// Enable 开启手势模式（异步初始化传感器）
func (gs *GestureSystem) Enable() {
	if gs.session == nil || gs.enabled {
		return
	}
	gs.enabled = true
	gs.camera.ResetDolly()
	gs.session.Start(gs.ctx)
	log.Printf("[GestureSystem] 手势模式开启")
}

// Disable 关闭手势模式，阻塞到采集循环退出
func (gs *GestureSystem) Disable() {
	if gs.session == nil || !gs.enabled {
		return
	}
	gs.enabled = false
	gs.session.Stop()
}

// Enabled 手势模式是否开启
func (gs *GestureSystem) Enabled() bool {
	return gs.enabled
}

// Status 返回会话状态
func (gs *GestureSystem) Status() (gesture.Status, error) {
	if gs.session == nil {
		return gesture.StatusIdle, nil
	}
	return gs.session.Status()
}

// Values 返回最近一次的平滑手势值
func (gs *GestureSystem) Values() gesture.GestureState {
	if gs.session == nil {
		return gesture.DefaultGestureState()
	}
	return gs.session.Values()
}

// Update 把手势值写入镜头
// 冻结的值在关闭后仍然生效，直到下次开启后被新的帧更新
func (gs *GestureSystem) Update(dt float64) {
	if gs.session == nil {
		return
	}
	v := gs.session.Values()
	gs.camera.SetZoom(v.Zoom)
	gs.camera.SetGestureOffset(v.RotationX, v.RotationY)
}
