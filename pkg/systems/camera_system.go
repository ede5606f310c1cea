package systems

import (
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/utils"
	"github.com/decker502/mathcloud/pkg/view"
)

// CameraSystem 管理镜头距离和环绕角度
//
// 距离：每帧以 CameraLerpFactor 的比例向目标距离靠近，
// 目标距离 = 当前形状的 cameraZ × 滚轮缩放 / 手势缩放，结果截断到 [MinCameraDistance, MaxCameraDistance]。
// 角度：自动播放时绕 Y 轴匀速旋转；拖拽改变 yaw/pitch；手势偏移叠加在其上。
type CameraSystem struct {
	distance     float64 // 当前距离
	baseDistance float64 // 形状的基础距离 cameraZ
	zoom         float64 // 手势缩放因子，2 表示距离减半
	userScale    float64 // 滚轮缩放（仅手势关闭时可用）

	yaw, pitch             float64 // 自动旋转与拖拽累积的角度
	offsetYaw, offsetPitch float64 // 手势偏移 [-1, 1]

	autoRotate bool
}

// NewCameraSystem 创建镜头系统
// 参数：
//   - startDistance: 镜头初始距离
//   - baseDistance: 初始形状的基础距离
func NewCameraSystem(startDistance, baseDistance float64) *CameraSystem {
	return &CameraSystem{
		distance:     utils.Clamp(startDistance, config.MinCameraDistance, config.MaxCameraDistance),
		baseDistance: baseDistance,
		zoom:         1,
		userScale:    1,
	}
}

// Update 推进一帧：距离插值与自动旋转
func (cs *CameraSystem) Update(dt float64) {
	cs.distance = utils.Lerp(cs.distance, cs.TargetDistance(), config.CameraLerpFactor)
	cs.distance = utils.Clamp(cs.distance, config.MinCameraDistance, config.MaxCameraDistance)

	if cs.autoRotate {
		cs.yaw += config.AutoRotateSpeed * dt
	}
}

// TargetDistance 返回截断后的目标距离
func (cs *CameraSystem) TargetDistance() float64 {
	zoom := cs.zoom
	if zoom <= 0 {
		zoom = 1
	}
	target := cs.baseDistance * cs.userScale / zoom
	return utils.Clamp(target, config.MinCameraDistance, config.MaxCameraDistance)
}

// OnShapeSelected 切换形状时更新基础距离；可直接注册到 PlaybackSystem
func (cs *CameraSystem) OnShapeSelected(sc config.ShapeConfig) {
	cs.baseDistance = sc.CameraZ
}

// SetZoom 设置手势缩放因子
func (cs *CameraSystem) SetZoom(zoom float64) {
	cs.zoom = zoom
}

// SetGestureOffset 设置手势旋转偏移，两轴均截断到 [-1, 1]
func (cs *CameraSystem) SetGestureOffset(x, y float64) {
	cs.offsetYaw = utils.Clamp(x, -1, 1)
	cs.offsetPitch = utils.Clamp(y, -1, 1)
}

// SetAutoRotate 开关自动旋转
func (cs *CameraSystem) SetAutoRotate(on bool) {
	cs.autoRotate = on
}

// Orbit 拖拽旋转，dx/dy 为指针移动的像素
func (cs *CameraSystem) Orbit(dx, dy float64) {
	cs.yaw -= dx * config.DragRotateSpeed
	cs.pitch = utils.Clamp(cs.pitch+dy*config.DragRotateSpeed, -config.MaxPitch, config.MaxPitch)
}

// Dolly 滚轮缩放：factor > 1 拉远，< 1 拉近
// 缩放后的目标距离仍在允许范围内
func (cs *CameraSystem) Dolly(factor float64) {
	if factor <= 0 || cs.baseDistance <= 0 {
		return
	}
	scale := cs.userScale * factor
	lo := config.MinCameraDistance * cs.zoom / cs.baseDistance
	hi := config.MaxCameraDistance * cs.zoom / cs.baseDistance
	cs.userScale = utils.Clamp(scale, lo, hi)
}

// ResetDolly 清除滚轮缩放
func (cs *CameraSystem) ResetDolly() {
	cs.userScale = 1
}

// Distance 返回当前距离
func (cs *CameraSystem) Distance() float64 {
	return cs.distance
}

// Camera 返回叠加手势偏移后的镜头
func (cs *CameraSystem) Camera() view.Camera {
	pitch := cs.pitch - cs.offsetPitch*config.GesturePitchRange
	return view.Camera{
		Distance: cs.distance,
		Yaw:      cs.yaw + cs.offsetYaw*config.GestureYawRange,
		Pitch:    utils.Clamp(pitch, -config.MaxPitch, config.MaxPitch),
		FOV:      config.FieldOfView,
		Near:     config.NearPlane,
	}
}
