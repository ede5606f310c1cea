package render

import (
	"fmt"
	"strings"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// titleFadeSeconds 切换形状后标题淡入的时长
const titleFadeSeconds = 0.6

// HUDState 一帧 HUD 需要的数据
type HUDState struct {
	Sequence      *config.SequenceConfig
	Index         int
	Playing       bool
	GestureOn     bool
	GestureStatus gesture.Status
	GestureErr    error
	Gesture       gesture.GestureState
	Particles     int
	Drawn         int
	Distance      float64
	SinceSwitch   float64 // 距离上次切换形状的时间（秒）
}

// DrawHUD 绘制文字信息
func DrawHUD(screen *ebiten.Image, s HUDState) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	// 标题：切换后从上方滑入
	progress := utils.EaseOutCubic(utils.Clamp(s.SinceSwitch/titleFadeSeconds, 0, 1))
	title := s.Sequence.Shapes[s.Index].Type.String()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("MATH CLOUD  ::  %s", strings.ToUpper(title)), 16, int(-12+28*progress))

	play := "PAUSED"
	if s.Playing {
		play = "PLAYING"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[Space] %s", play), w-140, 16)
	ebitenutil.DebugPrintAt(screen, gestureLine(s), w-260, 32)

	// 底部：形状列表，当前形状加括号
	var b strings.Builder
	for i, sc := range s.Sequence.Shapes {
		if i == s.Index {
			fmt.Fprintf(&b, "[%d:%s] ", i+1, sc.Type)
		} else {
			fmt.Fprintf(&b, " %d:%s  ", i+1, sc.Type)
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 16, h-40)
	ebitenutil.DebugPrintAt(screen, "<-/-> prev/next   1-8 select   drag orbit   G gesture   F11 fullscreen", 16, h-24)

	stats := fmt.Sprintf("particles: %d (%d drawn)\ndistance: %.1f\nFPS: %.0f",
		s.Particles, s.Drawn, s.Distance, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, stats, w-200, h-88)
}

func gestureLine(s HUDState) string {
	if !s.GestureOn {
		return fmt.Sprintf("[G] gesture off  zoom %.2f", s.Gesture.Zoom)
	}
	switch s.GestureStatus {
	case gesture.StatusLoading:
		return "[G] gesture loading..."
	case gesture.StatusFailed:
		return fmt.Sprintf("[G] gesture failed: %v", s.GestureErr)
	}
	return fmt.Sprintf("[G] gesture %s  zoom %.2f  rot %.2f,%.2f",
		s.GestureStatus, s.Gesture.Zoom, s.Gesture.RotationX, s.Gesture.RotationY)
}
