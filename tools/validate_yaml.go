package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/pkg/config"
)

// 校验 data/ 下的形状序列与手势录制（在项目根目录执行 go run tools/validate_yaml.go）
func main() {
	failed := 0

	data, err := os.ReadFile(config.DefaultSequencePath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	seq, err := config.ParseSequenceConfig(data)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", config.DefaultSequencePath, err)
		failed++
	} else {
		fmt.Printf("✅ %s: %d 个形状, %d 个粒子\n", config.DefaultSequencePath, len(seq.Shapes), seq.ParticleCount)
	}

	recordings, _ := filepath.Glob("data/gestures/*.yaml")
	for _, path := range recordings {
		rec, err := gesture.LoadRecording(path)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			failed++
			continue
		}
		invalid := 0
		for _, frame := range rec.Frames {
			for _, hand := range frame.DetectedHands() {
				if !hand.Valid() {
					invalid++
				}
			}
		}
		if invalid > 0 {
			fmt.Printf("❌ %s: %d 只手的关键点不足 21 个\n", path, invalid)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %d 帧, 间隔 %v\n", path, len(rec.Frames), rec.Interval())
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
}
