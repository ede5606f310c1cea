// Package render 用 ebiten 绘制粒子云与 HUD
package render

import (
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/view"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointRenderer 在 CPU 上把粒子叠加到缓冲，再整体上传为一张图像
type PointRenderer struct {
	fb     *view.Framebuffer
	pixels []byte
	img    *ebiten.Image
	drawn  int
}

// NewPointRenderer 创建粒子渲染器
func NewPointRenderer() *PointRenderer {
	return &PointRenderer{fb: view.NewFramebuffer(0, 0)}
}

// ensureSize 按画面尺寸重建离屏图像
func (r *PointRenderer) ensureSize(width, height int) {
	if r.img != nil && r.fb.Width == width && r.fb.Height == height {
		return
	}
	if r.img != nil {
		r.img.Deallocate()
	}
	r.fb.Resize(width, height)
	r.pixels = make([]byte, width*height*4)
	r.img = ebiten.NewImage(width, height)
}

// Draw 绘制一帧粒子
func (r *PointRenderer) Draw(screen *ebiten.Image, positions, colors []float32, cam view.Camera, model view.Model) {
	b := screen.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return
	}
	r.ensureSize(width, height)

	proj := view.NewProjector(cam, model, width, height)
	r.fb.Clear()
	r.drawn = r.fb.Splat(positions, colors, proj, config.PointSize, config.PointOpacity)
	r.fb.WriteRGBA(r.pixels)
	r.img.WritePixels(r.pixels)

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(r.img, op)
}

// Drawn 上一帧实际绘制的粒子数量
func (r *PointRenderer) Drawn() int {
	return r.drawn
}
