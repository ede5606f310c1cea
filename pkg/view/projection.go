// Package view 将粒子坐标投影到屏幕
//
// 镜头始终看向原点，位置由 Distance/Yaw/Pitch 在球面上确定；
// 模型旋转按 X、Y、Z 顺序组合。
// ebiten 渲染器和终端查看器共用这里的投影。
package view

import "github.com/chewxy/math32"

// DefaultNear 默认近裁剪面距离
const DefaultNear = 0.1

// Camera 环绕原点的透视镜头
type Camera struct {
	Distance float64 // 到原点的距离
	Yaw      float64 // 绕 Y 轴的角度（弧度），0 时位于 +Z
	Pitch    float64 // 仰角（弧度），正值时从上方俯视
	FOV      float64 // 垂直视角（度）
	Near     float64 // 近裁剪面，<= 0 时使用 DefaultNear
}

// Model 模型的欧拉角旋转（弧度）
type Model struct {
	RotX, RotY, RotZ float64
}

// Projector 一帧内固定的投影变换
type Projector struct {
	m        [9]float32 // 模型空间 → 视图空间
	distance float32
	near     float32
	scale    float32 // 屏幕半高 / tan(fov/2)
	cx, cy   float32
	aspect   float32 // 像素宽高比修正（终端字符不是正方形）
}

// NewProjector 创建投影器
// width/height 为目标画面的像素（或字符格）尺寸
func NewProjector(cam Camera, model Model, width, height int) *Projector {
	near := cam.Near
	if near <= 0 {
		near = DefaultNear
	}
	fov := float32(cam.FOV)
	if fov <= 0 {
		fov = 60
	}

	// 视图旋转：先绕 Y 轴转 -yaw，再绕 X 轴转 pitch，把镜头移到 +Z 轴上
	view := mul3(rotX(float32(cam.Pitch)), rotY(-float32(cam.Yaw)))
	// 模型旋转：R = Rx · Ry · Rz
	rot := mul3(rotX(float32(model.RotX)), mul3(rotY(float32(model.RotY)), rotZ(float32(model.RotZ))))

	return &Projector{
		m:        mul3(view, rot),
		distance: float32(cam.Distance),
		near:     float32(near),
		scale:    float32(height) / 2 / math32.Tan(fov*math32.Pi/360),
		cx:       float32(width) / 2,
		cy:       float32(height) / 2,
		aspect:   1,
	}
}

// SetAspect 设置水平方向的额外缩放（终端字符高约为宽的两倍时传 2）
func (p *Projector) SetAspect(aspect float32) {
	if aspect > 0 {
		p.aspect = aspect
	}
}

// Scale 返回投影缩放系数
// 距离为 depth 的物体，1 个世界单位对应 Scale/depth 个像素
func (p *Projector) Scale() float32 {
	return p.scale
}

// Project 投影一个点
// 返回屏幕坐标与到镜头的深度；点在近裁剪面之后时 ok 为 false
func (p *Projector) Project(x, y, z float32) (sx, sy, depth float32, ok bool) {
	m := &p.m
	vx := m[0]*x + m[1]*y + m[2]*z
	vy := m[3]*x + m[4]*y + m[5]*z
	vz := m[6]*x + m[7]*y + m[8]*z

	depth = p.distance - vz
	if depth <= p.near {
		return 0, 0, depth, false
	}
	f := p.scale / depth
	return p.cx + vx*f*p.aspect, p.cy - vy*f, depth, true
}

func rotX(a float32) [9]float32 {
	s, c := math32.Sincos(a)
	return [9]float32{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

func rotY(a float32) [9]float32 {
	s, c := math32.Sincos(a)
	return [9]float32{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func rotZ(a float32) [9]float32 {
	s, c := math32.Sincos(a)
	return [9]float32{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// mul3 3x3 行主序矩阵乘法 a·b
func mul3(a, b [9]float32) [9]float32 {
	var r [9]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return r
}
