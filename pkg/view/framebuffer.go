package view

import "github.com/chewxy/math32"

// maxSplatRadius 单个粒子最多覆盖的像素半径
const maxSplatRadius = 3

// Framebuffer 粒子叠加缓冲（每像素 RGB 浮点累加，加法混合）
type Framebuffer struct {
	Width, Height int
	accum         []float32
}

// NewFramebuffer 创建叠加缓冲
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize 调整尺寸并清空
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	fb.Width, fb.Height = width, height
	n := width * height * 3
	if cap(fb.accum) >= n {
		fb.accum = fb.accum[:n]
	} else {
		fb.accum = make([]float32, n)
	}
	fb.Clear()
}

// Clear 清空为黑色
func (fb *Framebuffer) Clear() {
	clear(fb.accum)
}

// Splat 把所有粒子叠加到缓冲上
//
// 参数：
//   - positions/colors: 长度为 count*3 的坐标与颜色缓冲
//   - proj: 本帧的投影
//   - pointSize: 距离 1 处的粒子尺寸（世界单位）
//   - opacity: 每个粒子的不透明度
//
// 返回实际绘制的粒子数量
func (fb *Framebuffer) Splat(positions, colors []float32, proj *Projector, pointSize, opacity float32) int {
	n := min(len(positions), len(colors)) / 3
	drawn := 0
	for i := 0; i < n; i++ {
		j := i * 3
		sx, sy, depth, ok := proj.Project(positions[j], positions[j+1], positions[j+2])
		if !ok {
			continue
		}
		size := pointSize * proj.Scale() / depth
		if fb.splatOne(sx, sy, size, opacity, colors[j], colors[j+1], colors[j+2]) {
			drawn++
		}
	}
	return drawn
}

// splatOne 以 (sx, sy) 为中心绘制一个带径向衰减的点
func (fb *Framebuffer) splatOne(sx, sy, size, opacity, r, g, b float32) bool {
	cx, cy := int(math32.Floor(sx)), int(math32.Floor(sy))
	radius := int(size / 2)
	if radius > maxSplatRadius {
		radius = maxSplatRadius
	}
	if cx+radius < 0 || cy+radius < 0 || cx-radius >= fb.Width || cy-radius >= fb.Height {
		return false
	}

	// 小于 1 像素的点按覆盖面积降低亮度
	intensity := opacity
	if size < 1 {
		intensity *= math32.Max(size, 0.1)
	}

	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= fb.Height {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= fb.Width {
				continue
			}
			w := intensity
			if radius > 0 {
				d := math32.Hypot(float32(x-cx), float32(y-cy)) / float32(radius+1)
				if d >= 1 {
					continue
				}
				w *= 1 - d
			}
			k := (y*fb.Width + x) * 3
			fb.accum[k] += r * w
			fb.accum[k+1] += g * w
			fb.accum[k+2] += b * w
		}
	}
	return true
}

// At 返回像素的累加值（未截断）
func (fb *Framebuffer) At(x, y int) (r, g, b float32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0, 0, 0
	}
	k := (y*fb.Width + x) * 3
	return fb.accum[k], fb.accum[k+1], fb.accum[k+2]
}

// WriteRGBA 把缓冲写成 RGBA 字节（长度 Width*Height*4），通道值截断到 [0, 1]
func (fb *Framebuffer) WriteRGBA(dst []byte) {
	n := fb.Width * fb.Height
	if len(dst) < n*4 {
		return
	}
	for i := 0; i < n; i++ {
		dst[i*4] = toByte(fb.accum[i*3])
		dst[i*4+1] = toByte(fb.accum[i*3+1])
		dst[i*4+2] = toByte(fb.accum[i*3+2])
		dst[i*4+3] = 0xff
	}
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return byte(v*255 + 0.5)
}
