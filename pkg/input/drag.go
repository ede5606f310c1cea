package input

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// DragTracker 跟踪单指（或鼠标左键）拖拽，用于环绕镜头
//
// 多指触摸时视为捏合手势，不产生拖拽位移。
type DragTracker struct {
	state          DragState
	startX, startY int
	lastX, lastY   int
	dx, dy         int // 本帧位移
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Update 从 ebiten 读取指针状态并推进（每帧调用一次）
func (dt *DragTracker) Update() {
	pressed, x, y := GetPointerState()
	if TouchCount() > 1 {
		pressed = false
	}
	dt.Step(pressed, x, y)
}

// Step 用一帧的指针状态推进状态机
func (dt *DragTracker) Step(pressed bool, x, y int) {
	dt.dx, dt.dy = 0, 0

	switch dt.state {
	case DragStateNone, DragStateEnded:
		if pressed {
			dt.state = DragStateStarted
			dt.startX, dt.startY = x, y
			dt.lastX, dt.lastY = x, y
		} else {
			dt.state = DragStateNone
		}

	case DragStateStarted, DragStateDragging:
		if !pressed {
			dt.state = DragStateEnded
			return
		}
		dt.state = DragStateDragging
		dt.dx, dt.dy = x-dt.lastX, y-dt.lastY
		dt.lastX, dt.lastY = x, y
	}
}

// Reset 重置拖拽状态
func (dt *DragTracker) Reset() {
	*dt = DragTracker{}
}

// State 当前拖拽状态
func (dt *DragTracker) State() DragState {
	return dt.state
}

// IsDragging 是否正在拖拽
func (dt *DragTracker) IsDragging() bool {
	return dt.state == DragStateDragging
}

// Delta 本帧的指针位移
func (dt *DragTracker) Delta() (dx, dy int) {
	return dt.dx, dt.dy
}

// Distance 从起点到当前位置的位移
func (dt *DragTracker) Distance() (dx, dy int) {
	return dt.lastX - dt.startX, dt.lastY - dt.startY
}
