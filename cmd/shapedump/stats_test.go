package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"

	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
	"gopkg.in/yaml.v3"
)

// TestComputeStats 边界、质心与半径
func TestComputeStats(t *testing.T) {
	buf := []float32{
		1, 0, 0,
		-1, 2, 0,
		0, 0, -3,
	}
	st := computeStats(shape.Rose, buf)

	if st.Count != 3 || st.Name != "rose" {
		t.Fatalf("Count/Name = %d/%s", st.Count, st.Name)
	}
	if st.Min != (Vec3{-1, 0, -3}) || st.Max != (Vec3{1, 2, 0}) {
		t.Errorf("Min/Max = %v/%v", st.Min, st.Max)
	}
	want := Vec3{0, 2.0 / 3, -1}
	for k := range want {
		if math.Abs(st.Centroid[k]-want[k]) > 1e-9 {
			t.Errorf("Centroid = %v, 期望 %v", st.Centroid, want)
		}
	}
	if st.Radius != 3 {
		t.Errorf("Radius = %v, 期望 3", st.Radius)
	}

	if empty := computeStats(shape.Rose, nil); empty.Count != 0 || empty.Radius != 0 {
		t.Errorf("空缓冲统计 = %+v", empty)
	}
}

// TestSettleFrames 收敛帧数与插值速度相符
func TestSettleFrames(t *testing.T) {
	from := []float32{0, 0, 0}
	to := []float32{1, 0, 0}

	// 0.5^n < 1e-3 在第 10 次移动后成立，第 11 次 Tick 不再移动
	if got := settleFrames(from, to, 0.5); got != 10 {
		t.Errorf("rate 0.5 收敛帧数 = %d, 期望 10", got)
	}
	if got := settleFrames(to, to, 0.5); got != 0 {
		t.Errorf("相同缓冲 = %d, 期望 0", got)
	}
	if got := settleFrames(from, []float32{1}, 0.5); got != -1 {
		t.Errorf("长度不同 = %d, 期望 -1", got)
	}
}

// TestBuildReport 按序列统计，可只输出一个形状
func TestBuildReport(t *testing.T) {
	seq := config.DefaultSequenceConfig().WithParticleCount(500)

	report, err := buildReport(seq, "", 1)
	if err != nil {
		t.Fatalf("buildReport failed: %v", err)
	}
	if len(report.Shapes) != len(seq.Shapes) {
		t.Fatalf("形状数 = %d, 期望 %d", len(report.Shapes), len(seq.Shapes))
	}
	for i, st := range report.Shapes {
		if st.Name != seq.Shapes[i].Type.String() || st.Count != 500 {
			t.Errorf("第 %d 个 = %s/%d", i, st.Name, st.Count)
		}
		if st.SettleFrames <= 0 {
			t.Errorf("%s 收敛帧数 = %d, 期望为正", st.Name, st.SettleFrames)
		}
	}

	// 同一种子结果相同
	again, _ := buildReport(seq, "", 1)
	if again.Shapes[3].Centroid != report.Shapes[3].Centroid {
		t.Error("同一种子的统计应一致")
	}

	one, err := buildReport(seq, "Cardioid", 1)
	if err != nil {
		t.Fatalf("buildReport(Cardioid) failed: %v", err)
	}
	if len(one.Shapes) != 1 || one.Shapes[0].Name != "cardioid" {
		t.Errorf("只统计 cardioid, got %+v", one.Shapes)
	}
	if one.Shapes[0] != report.Shapes[2] {
		t.Error("单个形状的统计应与完整报告一致")
	}

	if _, err := buildReport(seq, "square", 1); err == nil {
		t.Error("未知形状应返回错误")
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if !bytes.Contains(out, []byte("settleFrames:")) {
		t.Errorf("YAML 输出缺少 settleFrames:\n%s", out)
	}
}

// TestWriteCSV 表头加每个粒子一行
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	positions := []float32{1, 2, 3, -0.5, 0, 0.25}
	colors := []float32{1, 0, 0, 0, 0.5, 1}
	if err := writeCSV(&buf, positions, colors); err != nil {
		t.Fatalf("writeCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("行数 = %d, 期望 3", len(records))
	}
	if records[0][0] != "x" || records[2][0] != "-0.5000" || records[2][4] != "0.500" {
		t.Errorf("records = %v", records)
	}
}
