package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/systems"
	"github.com/decker502/mathcloud/pkg/view"
	"github.com/gdamore/tcell/v2"
)

const (
	// cellAspect 终端字符高约为宽的两倍
	cellAspect = 2
	// termPointSize 终端下的粒子尺寸（世界单位），小于一格时按面积衰减
	termPointSize = 0.15
	// termOpacity 每个粒子的不透明度；一格里会叠加很多粒子
	termOpacity = 0.35
	// minBrightness 低于该亮度的格子留空
	minBrightness = 0.02
	// keyOrbitStep 方向键 ↑/↓ 与 h/l 每次旋转的像素当量
	keyOrbitStep = 40
	// keyDollyStep +/- 每次缩放的比例
	keyDollyStep = 0.1
	// hudRows 底部状态栏占用的行数
	hudRows = 1
)

// shadeRunes 按亮度从低到高
var shadeRunes = []rune{'·', '░', '▒', '▓', '█'}

type viewerOptions struct {
	Sequence      *config.SequenceConfig
	StartIndex    int
	Rand          *rand.Rand
	Sensor        gesture.Sensor // 为 nil 时手势模式不可用
	FrameInterval time.Duration
}

// viewer 在终端里运行与窗口版相同的系统
type viewer struct {
	screen tcell.Screen

	playback  *systems.PlaybackSystem
	particles *systems.ParticleSystem
	camera    *systems.CameraSystem
	gestures  *systems.GestureSystem

	fb     *view.Framebuffer
	cancel context.CancelFunc
	drawn  int
}

func newViewer(screen tcell.Screen, opts viewerOptions) *viewer {
	seq := opts.Sequence
	if seq == nil {
		seq = config.DefaultSequenceConfig()
	}

	playback := systems.NewPlaybackSystem(seq)
	if opts.StartIndex > 0 {
		playback.SelectIndex(opts.StartIndex)
	}
	start := playback.Current()
	particles := systems.NewParticleSystem(seq, start, opts.Rand)
	camera := systems.NewCameraSystem(start.CameraZ, start.CameraZ)

	ctx, cancel := context.WithCancel(context.Background())
	var session *gesture.Session
	if opts.Sensor != nil {
		session = gesture.NewSession(opts.Sensor, nil, opts.FrameInterval)
	}

	playback.OnShapeSelected(particles.OnShapeSelected)
	playback.OnShapeSelected(camera.OnShapeSelected)

	return &viewer{
		screen:    screen,
		playback:  playback,
		particles: particles,
		camera:    camera,
		gestures:  systems.NewGestureSystem(ctx, session, camera),
		fb:        view.NewFramebuffer(0, 0),
		cancel:    cancel,
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.playback.Prev()
		case tcell.KeyRight:
			v.playback.Next()
		case tcell.KeyUp:
			v.camera.Orbit(0, -keyOrbitStep)
		case tcell.KeyDown:
			v.camera.Orbit(0, keyOrbitStep)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == ' ':
		v.playback.TogglePlay()
	case r == 'g':
		v.gestures.Toggle()
	case r == 'h':
		v.camera.Orbit(keyOrbitStep, 0)
	case r == 'l':
		v.camera.Orbit(-keyOrbitStep, 0)
	case r == '+' || r == '=':
		v.camera.Dolly(1 - keyDollyStep)
	case r == '-':
		v.camera.Dolly(1 + keyDollyStep)
	case r >= '1' && r <= '9':
		v.playback.SelectIndex(int(r - '1'))
	}
	return true
}

// step 推进一帧逻辑
func (v *viewer) step(dt float64) {
	v.playback.Update(dt)
	v.camera.SetAutoRotate(v.playback.AutoAdvancing())
	v.gestures.Update(dt)
	v.camera.Update(dt)
	v.particles.Update(dt)
}

// draw 把粒子投影到字符格并输出
func (v *viewer) draw() {
	w, h := v.screen.Size()
	rows := max(h-hudRows, 0)
	if v.fb.Width != w || v.fb.Height != rows {
		v.fb.Resize(w, rows)
	} else {
		v.fb.Clear()
	}

	proj := view.NewProjector(v.camera.Camera(), v.particles.Model(), w, rows)
	proj.SetAspect(cellAspect)
	v.drawn = v.fb.Splat(v.particles.Positions(), v.particles.Colors(), proj, termPointSize, termOpacity)
	v.particles.ClearDirty()

	v.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			r, g, b := v.fb.At(x, y)
			ch, style, ok := shadeCell(r, g, b)
			if ok {
				v.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
	v.drawStatus(rows, w)
	v.screen.Show()
}

// shadeCell 把一格的累加颜色转换为字符与前景色
func shadeCell(r, g, b float32) (rune, tcell.Style, bool) {
	peak := max(r, g, b)
	if peak < minBrightness {
		return 0, tcell.StyleDefault, false
	}
	level := int(min(peak, 1) * float32(len(shadeRunes)-1))
	// 颜色按峰值归一化，亮度由字符表达
	norm := max(peak, 1)
	color := tcell.NewRGBColor(channel(r/norm), channel(g/norm), channel(b/norm))
	return shadeRunes[level], tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack), true
}

func channel(v float32) int32 {
	return int32(min(max(v, 0), 1)*255 + 0.5)
}

func (v *viewer) drawStatus(row, width int) {
	if row < 0 {
		return
	}
	sc := v.playback.Current()
	state := "PLAY"
	if !v.playback.IsPlaying() {
		state = "PAUSE"
	}
	line := fmt.Sprintf(" %d/%d %s [%s] zoom %.2f dist %.1f drawn %d",
		v.playback.Index()+1, len(v.playback.Sequence().Shapes), strings.ToUpper(sc.Type.String()), state,
		v.gestures.Values().Zoom, v.camera.Distance(), v.drawn)
	if v.gestures.Enabled() {
		status, err := v.gestures.Status()
		line += " gesture:" + status.String()
		if err != nil {
			line += " (" + err.Error() + ")"
		}
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	runes := []rune(line)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		v.screen.SetContent(x, row, ch, nil, style)
	}
}

// close 停止手势采集
func (v *viewer) close() {
	v.gestures.Disable()
	v.cancel()
}
