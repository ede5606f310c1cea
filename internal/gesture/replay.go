package gesture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Recording 录制的关键点序列（YAML）
//
//	intervalMs: 33
//	frames:
//	  - palm: {x: 0.5, y: 0.5}
//	    pinch: 0.15
//	  - hands: []            # 这一帧没有手
//	  - hands:
//	      - [{x: 0.4, y: 0.6}, ...]   # 完整 21 点
type Recording struct {
	IntervalMs int             `yaml:"intervalMs"`
	Frames     []RecordedFrame `yaml:"frames"`
}

// RecordedFrame 一帧录制数据
// Palm/Pinch 是合成手的简写，设置 Palm 时忽略 Hands
type RecordedFrame struct {
	Hands []Hand    `yaml:"hands,omitempty"`
	Palm  *Landmark `yaml:"palm,omitempty"`
	Pinch float64   `yaml:"pinch,omitempty"`
}

// DetectedHands 返回这一帧的检测结果
func (f RecordedFrame) DetectedHands() []Hand {
	if f.Palm != nil {
		return []Hand{NewHand(f.Palm.X, f.Palm.Y, f.Pinch)}
	}
	return f.Hands
}

// Interval 返回录制的帧间隔，未设置时为 DefaultFrameInterval
func (r *Recording) Interval() time.Duration {
	if r.IntervalMs <= 0 {
		return DefaultFrameInterval
	}
	return time.Duration(r.IntervalMs) * time.Millisecond
}

// ParseRecording 解析 YAML 录制数据
func ParseRecording(data []byte) (*Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse gesture recording: %w", err)
	}
	if len(rec.Frames) == 0 {
		return nil, fmt.Errorf("gesture recording contains no frames")
	}
	return &rec, nil
}

// LoadRecording 从文件加载录制数据
func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gesture recording %s: %w", path, err)
	}
	rec, err := ParseRecording(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// ReplaySensor 循环回放录制数据的传感器
type ReplaySensor struct {
	rec *Recording
}

// NewReplaySensor 创建回放传感器
func NewReplaySensor(rec *Recording) *ReplaySensor {
	return &ReplaySensor{rec: rec}
}

// Initialize 实现 Sensor 接口
func (s *ReplaySensor) Initialize(ctx context.Context) (Detector, error) {
	if s.rec == nil || len(s.rec.Frames) == 0 {
		return nil, errors.New("empty gesture recording")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &replayDetector{frames: s.rec.Frames}, nil
}

type replayDetector struct {
	mu     sync.Mutex
	frames []RecordedFrame
	next   int
	closed bool
}

func (d *replayDetector) Detect(time.Duration) ([]Hand, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.New("replay detector closed")
	}
	frame := d.frames[d.next%len(d.frames)]
	d.next++
	return frame.DetectedHands(), nil
}

func (d *replayDetector) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}
