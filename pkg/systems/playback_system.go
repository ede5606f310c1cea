package systems

import (
	"log"

	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/utils"
)

// ShapeSelectedFunc 当前形状变化时的回调
type ShapeSelectedFunc func(sc config.ShapeConfig)

// PlaybackSystem 形状序列的播放与选择
//
// 状态：
//   - index: 当前形状在序列中的位置，初始为 0
//   - playing: 是否自动播放，初始为 true
//   - manualOverride: 用户手动选择过形状，初始为 false
//
// 只有 playing && !manualOverride 时计时器才会推进；
// 播放状态每次变化都会让计时器从 0 重新开始。
type PlaybackSystem struct {
	seq *config.SequenceConfig

	index          int
	playing        bool
	manualOverride bool

	interval float64 // 自动切换间隔（秒）
	elapsed  float64 // 距离上次切换或状态变化的时间（秒）

	listeners []ShapeSelectedFunc
}

// NewPlaybackSystem 创建播放系统
func NewPlaybackSystem(seq *config.SequenceConfig) *PlaybackSystem {
	return &PlaybackSystem{
		seq:      seq,
		playing:  true,
		interval: float64(seq.AutoSwitchMs) / 1000,
	}
}

// OnShapeSelected 注册形状变化回调，按注册顺序调用
func (ps *PlaybackSystem) OnShapeSelected(fn ShapeSelectedFunc) {
	ps.listeners = append(ps.listeners, fn)
}

// Update 推进自动切换计时器
// 每累计一个间隔切换到下一个形状（末尾回到开头）
func (ps *PlaybackSystem) Update(dt float64) {
	if !ps.AutoAdvancing() {
		return
	}
	ps.elapsed += dt
	if ps.elapsed >= ps.interval {
		ps.elapsed -= ps.interval
		ps.setIndex(ps.index + 1)
	}
}

// Select 手动选择形状：进入手动模式并暂停
// 形状不在序列中时不做任何修改并返回 false
func (ps *PlaybackSystem) Select(t shape.Type) bool {
	idx := ps.seq.IndexOf(t)
	if idx < 0 {
		return false
	}
	ps.SelectIndex(idx)
	return true
}

// SelectIndex 按序列位置手动选择形状
func (ps *PlaybackSystem) SelectIndex(i int) {
	if i < 0 || i >= len(ps.seq.Shapes) {
		return
	}
	ps.manualOverride = true
	ps.setPlaying(false)
	ps.setIndex(i)
}

// TogglePlay 切换播放/暂停；恢复播放时清除手动模式
func (ps *PlaybackSystem) TogglePlay() {
	if ps.playing {
		ps.setPlaying(false)
		return
	}
	ps.manualOverride = false
	ps.setPlaying(true)
}

// Next 手动切换到下一个形状，不改变播放状态
func (ps *PlaybackSystem) Next() {
	ps.elapsed = 0
	ps.setIndex(ps.index + 1)
}

// Prev 手动切换到上一个形状，不改变播放状态
func (ps *PlaybackSystem) Prev() {
	ps.elapsed = 0
	ps.setIndex(ps.index - 1)
}

// Current 返回当前形状配置
func (ps *PlaybackSystem) Current() config.ShapeConfig {
	return ps.seq.Shapes[ps.index]
}

// Index 返回当前形状在序列中的位置
func (ps *PlaybackSystem) Index() int {
	return ps.index
}

// IsPlaying 是否处于播放状态
func (ps *PlaybackSystem) IsPlaying() bool {
	return ps.playing
}

// ManualOverride 是否处于手动选择模式
func (ps *PlaybackSystem) ManualOverride() bool {
	return ps.manualOverride
}

// AutoAdvancing 计时器是否在运行（同时决定镜头是否自动旋转）
func (ps *PlaybackSystem) AutoAdvancing() bool {
	return ps.playing && !ps.manualOverride
}

// Sequence 返回播放序列
func (ps *PlaybackSystem) Sequence() *config.SequenceConfig {
	return ps.seq
}

func (ps *PlaybackSystem) setPlaying(playing bool) {
	if ps.playing != playing {
		log.Printf("[Playback] playing=%v manualOverride=%v", playing, ps.manualOverride)
	}
	ps.playing = playing
	ps.elapsed = 0
}

func (ps *PlaybackSystem) setIndex(i int) {
	i = utils.WrapIndex(i, len(ps.seq.Shapes))
	changed := i != ps.index
	ps.index = i
	if !changed {
		return
	}
	sc := ps.seq.Shapes[i]
	log.Printf("[Playback] 切换到 %s (%d/%d)", sc.Type.DisplayName(), i+1, len(ps.seq.Shapes))
	for _, fn := range ps.listeners {
		fn(sc)
	}
}
