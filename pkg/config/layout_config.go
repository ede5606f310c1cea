package config

import "math"

// 布局配置常量
// 本文件定义了窗口、镜头与模型自转的参数

// Window Configuration (窗口配置)
const (
	// ScreenWidth 逻辑画面宽度（像素）
	ScreenWidth = 960

	// ScreenHeight 逻辑画面高度（像素）
	ScreenHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Math Cloud"
)

// Camera Configuration (镜头配置)
const (
	// FieldOfView 垂直视角（度）
	FieldOfView = 60.0

	// NearPlane 近裁剪面距离，比它更近的粒子不绘制
	NearPlane = 0.1

	// MinCameraDistance 镜头到原点的最小距离
	MinCameraDistance = 5.0

	// MaxCameraDistance 镜头到原点的最大距离
	MaxCameraDistance = 100.0

	// CameraLerpFactor 每帧镜头距离向目标靠近的比例
	CameraLerpFactor = 0.05

	// AutoRotateSpeed 自动播放时镜头绕 Y 轴的角速度（弧度/秒）
	AutoRotateSpeed = 0.5 * 2 * math.Pi / 60

	// DragRotateSpeed 拖拽旋转灵敏度（弧度/像素）
	DragRotateSpeed = 0.005

	// MaxPitch 俯仰角限制（弧度），避免越过极点
	MaxPitch = 85 * math.Pi / 180

	// GestureYawRange 手势偏移为 ±1 时的水平旋转量（弧度）
	GestureYawRange = math.Pi / 2

	// GesturePitchRange 手势偏移为 ±1 时的俯仰量（弧度）
	GesturePitchRange = math.Pi / 4
)

// Model Spin Configuration (模型自转配置)
// 每帧增量，按 60 帧/秒 设计
const (
	// ModelSpinY 每帧绕 Y 轴的旋转增量（弧度）
	ModelSpinY = 0.001

	// ModelSpinZ 每帧绕 Z 轴的旋转增量（弧度）
	ModelSpinZ = 0.0005

	// ModelTiltAmplitude 绕 X 轴摆动的幅度（弧度）
	ModelTiltAmplitude = 0.1

	// ModelTiltFrequency 绕 X 轴摆动的角频率（弧度/秒）
	ModelTiltFrequency = 0.1

	// FramesPerSecond 逻辑帧率
	FramesPerSecond = 60
)

// Rendering Configuration (渲染配置)
const (
	// PointSize 粒子在距离 1 处的投影尺寸系数
	PointSize = 0.15

	// PointOpacity 每个粒子叠加到画面时的不透明度
	PointOpacity = 0.8

	// MobileParticleCount 移动端默认粒子数（CPU 叠加绘制的开销与粒子数成正比）
	MobileParticleCount = 12000
)

// ProjectionScale 返回视角对应的投影缩放：屏幕半高 / tan(fov/2)
func ProjectionScale(screenHeight int) float64 {
	return float64(screenHeight) / 2 / math.Tan(FieldOfView*math.Pi/360)
}
