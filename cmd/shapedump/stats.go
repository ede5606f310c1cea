package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/decker502/mathcloud/internal/morph"
	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
)

// maxSettleFrames 统计收敛帧数时的上限
const maxSettleFrames = 10000

// Vec3 三维向量（YAML 中写成 [x, y, z]）
type Vec3 [3]float64

// ShapeStats 一个形状缓冲的统计信息
type ShapeStats struct {
	Name     string  `yaml:"name"`
	Display  string  `yaml:"display"`
	Count    int     `yaml:"count"`
	Min      Vec3    `yaml:"min,flow"`
	Max      Vec3    `yaml:"max,flow"`
	Centroid Vec3    `yaml:"centroid,flow"`
	Radius   float64 `yaml:"radius"` // 离原点最远的距离
	// SettleFrames 从序列中上一个形状插值到该形状所需的帧数
	SettleFrames int `yaml:"settleFrames"`
}

// Report 所有形状的统计
type Report struct {
	Seed            int64        `yaml:"seed"`
	TransitionSpeed float64      `yaml:"transitionSpeed"`
	Shapes          []ShapeStats `yaml:"shapes"`
}

// computeStats 统计一个位置缓冲
func computeStats(t shape.Type, buf []float32) ShapeStats {
	st := ShapeStats{Name: t.String(), Display: t.DisplayName(), Count: len(buf) / 3}
	if st.Count == 0 {
		return st
	}
	for k := 0; k < 3; k++ {
		st.Min[k] = math.Inf(1)
		st.Max[k] = math.Inf(-1)
	}
	for i := 0; i < st.Count; i++ {
		var r2 float64
		for k := 0; k < 3; k++ {
			v := float64(buf[i*3+k])
			st.Min[k] = math.Min(st.Min[k], v)
			st.Max[k] = math.Max(st.Max[k], v)
			st.Centroid[k] += v
			r2 += v * v
		}
		st.Radius = math.Max(st.Radius, math.Sqrt(r2))
	}
	for k := 0; k < 3; k++ {
		st.Centroid[k] /= float64(st.Count)
	}
	return st
}

// settleFrames 统计从 from 插值到 to 需要的帧数，超过上限返回 -1
func settleFrames(from, to []float32, rate float32) int {
	engine := morph.NewEngine(from)
	if err := engine.SetTarget(to); err != nil {
		return -1
	}
	for frames := 0; frames < maxSettleFrames; frames++ {
		if !engine.Tick(rate) {
			return frames
		}
	}
	return -1
}

// buildReport 按序列生成每个形状并统计
// only 非空时只统计这一个形状（收敛帧数仍从序列中的上一个形状算起）
func buildReport(seq *config.SequenceConfig, only string, seed int64) (*Report, error) {
	rng := rand.New(rand.NewSource(seed))
	report := &Report{Seed: seed, TransitionSpeed: seq.TransitionSpeed}

	onlyIndex := -1
	if only != "" {
		t, ok := shape.Parse(only)
		if !ok || seq.IndexOf(t) < 0 {
			return nil, fmt.Errorf("unknown shape %q", only)
		}
		onlyIndex = seq.IndexOf(t)
	}

	buffers := make([][]float32, len(seq.Shapes))
	for i, sc := range seq.Shapes {
		buffers[i] = shape.Generate(sc.Type, seq.ParticleCount, rng)
	}
	for i, sc := range seq.Shapes {
		if onlyIndex >= 0 && i != onlyIndex {
			continue
		}
		st := computeStats(sc.Type, buffers[i])
		prev := buffers[(i+len(buffers)-1)%len(buffers)]
		st.SettleFrames = settleFrames(prev, buffers[i], float32(seq.TransitionSpeed))
		report.Shapes = append(report.Shapes, st)
	}
	return report, nil
}

// writeCSV 把位置缓冲与颜色写成 CSV（x,y,z,r,g,b）
func writeCSV(w io.Writer, positions, colors []float32) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z", "r", "g", "b"}); err != nil {
		return err
	}
	row := make([]string, 6)
	n := min(len(positions), len(colors)) / 3
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			row[k] = strconv.FormatFloat(float64(positions[i*3+k]), 'f', 4, 32)
			row[3+k] = strconv.FormatFloat(float64(colors[i*3+k]), 'f', 3, 32)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
