// Package input 封装 ebiten 的鼠标、滚轮与触摸输入
//
// 所有 ebiten 输入函数只能在游戏循环（Update）中调用；
// 需要跨 goroutine 读取的状态（手势传感器）在 Update 中采样后加锁保存。
package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
// 优先返回第一个触摸点，没有触摸时返回鼠标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// TwoFingerPinch 返回前两个触摸点的中点和间距
// 触摸点少于两个时 ok 为 false
func TwoFingerPinch() (cx, cy, dist float64, ok bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) < 2 {
		return 0, 0, 0, false
	}
	x1, y1 := ebiten.TouchPosition(touchIDs[0])
	x2, y2 := ebiten.TouchPosition(touchIDs[1])
	cx = float64(x1+x2) / 2
	cy = float64(y1+y2) / 2
	dist = math.Hypot(float64(x2-x1), float64(y2-y1))
	return cx, cy, dist, true
}

// TouchCount 当前活动的触摸点数量
func TouchCount() int {
	return len(ebiten.AppendTouchIDs(nil))
}
