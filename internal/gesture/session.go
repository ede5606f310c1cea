package gesture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultFrameInterval 默认采集间隔（约 30 帧/秒）
const DefaultFrameInterval = 33 * time.Millisecond

// ErrSensorUnavailable 摄像头或识别模型初始化失败
var ErrSensorUnavailable = errors.New("gesture sensor unavailable")

// Sensor 手势传感器（摄像头 + 关键点模型）
// Initialize 是异步准备阶段，成功后返回可逐帧检测的 Detector
type Sensor interface {
	Initialize(ctx context.Context) (Detector, error)
}

// Detector 逐帧检测器
type Detector interface {
	// Detect 检测一帧，ts 为会话开始以来的时间
	// 返回 0 或 1 只手；没有手不是错误
	Detect(ts time.Duration) ([]Hand, error)
	// Close 释放帧源（摄像头等外部资源）
	Close() error
}

// Status 会话状态
type Status int

const (
	StatusIdle    Status = iota // 未启用
	StatusLoading               // 正在初始化传感器
	StatusActive                // 正在逐帧采集
	StatusFailed                // 初始化失败，需要重新启用
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusActive:
		return "active"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Session 管理一次手势模式的生命周期
//
// Start 异步初始化传感器，成功后在独立 goroutine 中按固定间隔采集帧；
// Stop 同步停止采集循环并释放帧源，返回后不会再有任何更新。
// 停止后平滑状态保持不变，下次启用从该值继续收敛。
type Session struct {
	sensor   Sensor
	interval time.Duration

	mu     sync.Mutex
	proc   *Processor
	status Status
	err    error
	cancel context.CancelFunc
	done   chan struct{}

	frames     uint64
	detectErrs uint64
}

// NewSession 创建会话
//
// 参数：
//   - sensor: 手势传感器
//   - proc: 平滑处理器，为 nil 时新建
//   - interval: 采集间隔，<= 0 时使用 DefaultFrameInterval
func NewSession(sensor Sensor, proc *Processor, interval time.Duration) *Session {
	if proc == nil {
		proc = NewProcessor()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Session{
		sensor:   sensor,
		interval: interval,
		proc:     proc,
		status:   StatusIdle,
	}
}

// Start 启用手势模式，立即返回；重复调用时若采集仍在进行则忽略
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		select {
		case <-s.done:
			// 上一次已结束（初始化失败），可以重新开始
			s.cancel()
		default:
			return
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.status = StatusLoading
	s.err = nil

	log.Printf("[Gesture] 开始初始化传感器")
	go s.run(runCtx, done)
}

// Stop 关闭手势模式，等待采集循环退出并释放帧源
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	s.mu.Lock()
	s.status = StatusIdle
	s.err = nil
	s.mu.Unlock()
	log.Printf("[Gesture] 手势模式已关闭")
}

// Status 返回会话状态；失败时附带错误
func (s *Session) Status() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// Values 返回当前平滑后的手势状态
func (s *Session) Values() GestureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proc.State()
}

// Frames 返回已处理的有效帧数（检测到手的帧）
func (s *Session) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Session) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	det, err := s.sensor.Initialize(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("[Gesture] 传感器初始化失败: %v", err)
		s.setStatus(StatusFailed, fmt.Errorf("%w: %v", ErrSensorUnavailable, err))
		return
	}
	defer func() {
		if err := det.Close(); err != nil {
			log.Printf("[Gesture] 释放帧源失败: %v", err)
		}
	}()

	// 初始化期间已被关闭：直接释放
	if ctx.Err() != nil {
		return
	}
	s.setStatus(StatusActive, nil)
	log.Printf("[Gesture] 传感器就绪，采集间隔 %v", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.captureFrame(ctx, det, time.Since(start))
		}
	}
}

// captureFrame 检测一帧并更新平滑状态；单帧错误按“没有手”处理
func (s *Session) captureFrame(ctx context.Context, det Detector, ts time.Duration) {
	hands, err := det.Detect(ts)
	if err != nil {
		s.mu.Lock()
		s.detectErrs++
		n := s.detectErrs
		s.mu.Unlock()
		if n == 1 || n%100 == 0 {
			log.Printf("[Gesture] 检测失败 (%d 次): %v", n, err)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Stop 已开始，丢弃这一帧
	if ctx.Err() != nil {
		return
	}
	if s.proc.Update(hands) {
		s.frames++
	}
}

func (s *Session) setStatus(status Status, err error) {
	s.mu.Lock()
	s.status = status
	s.err = err
	s.mu.Unlock()
}
