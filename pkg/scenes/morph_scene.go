package scenes

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/input"
	"github.com/decker502/mathcloud/pkg/render"
	"github.com/decker502/mathcloud/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// startCameraDistance 启动时镜头的距离，随后向第一个形状的 cameraZ 靠拢
const startCameraDistance = 40.0

// wheelDollyStep 手势关闭时滚轮每格的缩放比例
const wheelDollyStep = 0.1

// CommandKind 场景命令类型
type CommandKind int

const (
	CmdTogglePlay CommandKind = iota
	CmdNext
	CmdPrev
	CmdSelect
	CmdToggleGesture
)

// Command 一次用户操作
type Command struct {
	Kind  CommandKind
	Index int // CmdSelect 时为序列位置
}

// digitKeys 数字键 1-9 → 序列位置
var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// MorphSceneOptions 场景参数
type MorphSceneOptions struct {
	Sequence   *config.SequenceConfig
	StartIndex int        // 初始形状在序列中的位置
	Rand       *rand.Rand // 为 nil 时使用默认随机源

	// Sensor 手势传感器，为 nil 时手势模式不可用
	Sensor gesture.Sensor
	// Pointer 非 nil 时每帧采样鼠标/触摸并喂给它（通常与 Sensor 相同）
	Pointer *input.PointerSensor
	// FrameInterval 手势采集间隔，<= 0 时使用默认值
	FrameInterval time.Duration
}

// MorphScene 粒子形变主场景
type MorphScene struct {
	playback  *systems.PlaybackSystem
	particles *systems.ParticleSystem
	camera    *systems.CameraSystem
	gestures  *systems.GestureSystem

	renderer *render.PointRenderer
	drag     *input.DragTracker
	pointer  *input.PointerSensor

	cancel        context.CancelFunc
	sinceSwitch   float64
	width, height int
}

var _ Scene = (*MorphScene)(nil)

// NewMorphScene 创建主场景
func NewMorphScene(opts MorphSceneOptions) *MorphScene {
	seq := opts.Sequence
	if seq == nil {
		seq = config.DefaultSequenceConfig()
	}

	playback := systems.NewPlaybackSystem(seq)
	// 指定了初始形状时视为手动选择（与启动后按数字键一致）
	if opts.StartIndex > 0 {
		playback.SelectIndex(opts.StartIndex)
	}
	start := playback.Current()
	particles := systems.NewParticleSystem(seq, start, opts.Rand)
	camera := systems.NewCameraSystem(startCameraDistance, start.CameraZ)

	ctx, cancel := context.WithCancel(context.Background())
	var session *gesture.Session
	if opts.Sensor != nil {
		session = gesture.NewSession(opts.Sensor, nil, opts.FrameInterval)
	}

	s := &MorphScene{
		playback:  playback,
		particles: particles,
		camera:    camera,
		gestures:  systems.NewGestureSystem(ctx, session, camera),
		renderer:  render.NewPointRenderer(),
		drag:      input.NewDragTracker(),
		pointer:   opts.Pointer,
		cancel:    cancel,
		width:     config.ScreenWidth,
		height:    config.ScreenHeight,
	}

	playback.OnShapeSelected(particles.OnShapeSelected)
	playback.OnShapeSelected(camera.OnShapeSelected)
	playback.OnShapeSelected(func(config.ShapeConfig) { s.sinceSwitch = 0 })

	log.Printf("[MorphScene] 场景创建完成，手势可用: %v", s.gestures.Available())
	return s
}

// Update 读取输入并推进所有系统
func (s *MorphScene) Update(deltaTime float64) {
	s.pollInput()
	s.step(deltaTime)
}

// pollInput 读取 ebiten 输入（只能在游戏循环中调用）
func (s *MorphScene) pollInput() {
	for _, cmd := range keyCommands() {
		s.Apply(cmd)
	}

	s.drag.Update()
	if s.drag.IsDragging() {
		dx, dy := s.drag.Delta()
		s.camera.Orbit(float64(dx), float64(dy))
	}

	if s.gestures.Enabled() {
		if s.pointer != nil {
			s.pointer.Poll(s.width, s.height)
		}
	} else if _, wy := ebiten.Wheel(); wy != 0 {
		s.camera.Dolly(1 - wy*wheelDollyStep)
	}
}

// keyCommands 把本帧按下的按键转换为命令
func keyCommands() []Command {
	var cmds []Command
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, Command{Kind: CmdTogglePlay})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cmds = append(cmds, Command{Kind: CmdNext})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cmds = append(cmds, Command{Kind: CmdPrev})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		cmds = append(cmds, Command{Kind: CmdToggleGesture})
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			cmds = append(cmds, Command{Kind: CmdSelect, Index: i})
		}
	}
	return cmds
}

// Apply 执行一条命令
func (s *MorphScene) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdTogglePlay:
		s.playback.TogglePlay()
	case CmdNext:
		s.playback.Next()
	case CmdPrev:
		s.playback.Prev()
	case CmdSelect:
		s.playback.SelectIndex(cmd.Index)
	case CmdToggleGesture:
		s.gestures.Toggle()
	}
}

// step 推进一帧（不读取输入）
func (s *MorphScene) step(dt float64) {
	s.sinceSwitch += dt
	s.playback.Update(dt)
	s.camera.SetAutoRotate(s.playback.AutoAdvancing())
	s.gestures.Update(dt)
	s.camera.Update(dt)
	s.particles.Update(dt)
}

// Draw 绘制粒子与 HUD
func (s *MorphScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.width, s.height = b.Dx(), b.Dy()

	s.renderer.Draw(screen, s.particles.Positions(), s.particles.Colors(), s.camera.Camera(), s.particles.Model())
	s.particles.ClearDirty()

	status, err := s.gestures.Status()
	render.DrawHUD(screen, render.HUDState{
		Sequence:      s.playback.Sequence(),
		Index:         s.playback.Index(),
		Playing:       s.playback.IsPlaying(),
		GestureOn:     s.gestures.Enabled(),
		GestureStatus: status,
		GestureErr:    err,
		Gesture:       s.gestures.Values(),
		Particles:     s.particles.Count(),
		Drawn:         s.renderer.Drawn(),
		Distance:      s.camera.Distance(),
		SinceSwitch:   s.sinceSwitch,
	})
}

// Close 停止手势采集，实现 game.Closer
func (s *MorphScene) Close() {
	s.gestures.Disable()
	s.cancel()
}

// Playback 返回播放系统
func (s *MorphScene) Playback() *systems.PlaybackSystem {
	return s.playback
}

// Particles 返回粒子系统
func (s *MorphScene) Particles() *systems.ParticleSystem {
	return s.particles
}

// Camera 返回镜头系统
func (s *MorphScene) Camera() *systems.CameraSystem {
	return s.camera
}

// Gestures 返回手势系统
func (s *MorphScene) Gestures() *systems.GestureSystem {
	return s.gestures
}
