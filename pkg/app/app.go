// Package app 提供粒子云应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/embedded"
	"github.com/decker502/mathcloud/pkg/game"
	"github.com/decker502/mathcloud/pkg/input"
	"github.com/decker502/mathcloud/pkg/scenes"
	"github.com/decker502/mathcloud/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 手势来源
const (
	GesturePointer = "pointer" // 鼠标/触摸模拟手势
	GestureReplay  = "replay"  // 回放录制的手部数据
	GestureOff     = "off"     // 不提供手势
)

// DefaultReplayPath 内置的演示录制
const DefaultReplayPath = "data/gestures/pinch_orbit.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 形状序列配置路径，为空时使用内置的 data/sequence.yaml
	ConfigPath string
	// Shape 初始形状名称（如 "rose"），为空时从序列第一个开始自动播放
	Shape string
	// Count 覆盖配置中的粒子数量，<= 0 时使用配置值（移动端为 config.MobileParticleCount）
	Count int
	// Seed 随机种子，0 表示按时间取种
	Seed int64
	// GestureMode 手势来源：pointer / replay / off
	GestureMode string
	// ReplayPath GestureMode 为 replay 时的录制文件，为空时使用内置演示
	ReplayPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultSequencePath
	}
	seq, err := config.LoadSequenceConfig(path)
	if err != nil {
		return nil, fmt.Errorf("形状序列加载失败: %w", err)
	}
	count := cfg.Count
	if count <= 0 && utils.IsMobile() {
		count = config.MobileParticleCount
	}
	seq = seq.WithParticleCount(count)
	log.Printf("[Config] 加载形状序列: %s (%d 个形状, %d 个粒子)", path, len(seq.Shapes), seq.ParticleCount)

	startIndex, err := resolveStartIndex(seq, cfg.Shape)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := scenes.MorphSceneOptions{
		Sequence:   seq,
		StartIndex: startIndex,
		Rand:       rand.New(rand.NewSource(seed)),
	}
	if err := attachSensor(&opts, cfg); err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewMorphScene(opts))
	log.Printf("[App] 启动完成，初始形状: %s, 手势来源: %s", seq.Shapes[startIndex].Type, gestureModeOrDefault(cfg.GestureMode))

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// resolveStartIndex 把形状名称转换为序列位置
func resolveStartIndex(seq *config.SequenceConfig, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	t, ok := shape.Parse(name)
	if !ok {
		return 0, fmt.Errorf("未知形状: %q", name)
	}
	idx := seq.IndexOf(t)
	if idx < 0 {
		return 0, fmt.Errorf("形状 %s 不在序列中", t)
	}
	return idx, nil
}

func gestureModeOrDefault(mode string) string {
	if mode == "" {
		return GesturePointer
	}
	return mode
}

// attachSensor 按手势来源配置传感器
func attachSensor(opts *scenes.MorphSceneOptions, cfg Config) error {
	switch gestureModeOrDefault(cfg.GestureMode) {
	case GesturePointer:
		ptr := input.NewPointerSensor()
		opts.Sensor = ptr
		opts.Pointer = ptr
	case GestureReplay:
		path := cfg.ReplayPath
		if path == "" {
			path = DefaultReplayPath
		}
		data, err := embedded.ReadFile(path)
		if err != nil {
			return fmt.Errorf("手势录制读取失败: %w", err)
		}
		rec, err := gesture.ParseRecording(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Printf("[App] 回放手势录制: %s (%d 帧)", path, len(rec.Frames))
		opts.Sensor = gesture.NewReplaySensor(rec)
		opts.FrameInterval = rec.Interval()
	case GestureOff:
	default:
		return fmt.Errorf("未知手势来源: %q", cfg.GestureMode)
	}
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.FramesPerSecond)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在退出时停止手势采集
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
