package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景持有后台资源（手势采集等）时实现
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 切换到其他场景
//   - 窗口关闭或程序退出
type Closer interface {
	Close()
}
