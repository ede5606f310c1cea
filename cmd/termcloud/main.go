// Package main provides a terminal point-cloud viewer that runs the same
// playback, morph, camera and gesture systems as the window build.
//
// Usage:
//
//	go run ./cmd/termcloud [flags]
//
// Flags:
//
//	--config <file>     Shape sequence YAML (default: built-in sequence)
//	--shape <name>      Start with specific shape (e.g., --shape=rose)
//	--count <n>         Particle count (default 8000, terminal cells are coarse)
//	--seed <n>          Random seed (0 = time based)
//	--replay <file>     Gesture recording; enables gesture mode (G)
//	--verbose           Write logs to termcloud.log
//
// Controls:
//
//	Space             - Play / pause
//	Left/Right Arrow  - Previous / next shape
//	1-9               - Select shape by position
//	Up/Down, h/l      - Orbit camera
//	+ / -             - Zoom in / out
//	G                 - Toggle gesture replay
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/mathcloud/internal/gesture"
	"github.com/decker502/mathcloud/internal/shape"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/embedded"
	"github.com/gdamore/tcell/v2"
)

const (
	// renderInterval 终端刷新间隔（约 30 FPS）
	renderInterval = 33 * time.Millisecond
	// stepsPerRender 每次刷新推进的逻辑帧数，保持与 60 FPS 窗口版相同的节奏
	stepsPerRender = 2
	// defaultTermCount 终端默认粒子数
	defaultTermCount = 8000
)

var (
	configFlag  = flag.String("config", "", "Shape sequence config (YAML), empty for built-in")
	shapeFlag   = flag.String("shape", "", "Start with specific shape name")
	countFlag   = flag.Int("count", defaultTermCount, "Particle count")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	replayFlag  = flag.String("replay", "", "Gesture recording (YAML) used for gesture mode")
	verboseFlag = flag.Bool("verbose", false, "Write logs to termcloud.log")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("termcloud.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	// data/ 路径相对当前目录从磁盘读取
	embedded.Init(os.DirFS("."))

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	v := newViewer(screen, opts)
	run(v)
	v.close()
	screen.Fini()
}

func buildOptions() (viewerOptions, error) {
	seq := config.DefaultSequenceConfig()
	if *configFlag != "" {
		loaded, err := config.LoadSequenceConfig(*configFlag)
		if err != nil {
			return viewerOptions{}, err
		}
		seq = loaded
	}
	seq = seq.WithParticleCount(*countFlag)

	opts := viewerOptions{Sequence: seq}
	if *shapeFlag != "" {
		t, ok := shape.Parse(*shapeFlag)
		if !ok || seq.IndexOf(t) < 0 {
			return viewerOptions{}, fmt.Errorf("unknown shape %q", *shapeFlag)
		}
		opts.StartIndex = seq.IndexOf(t)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))

	if *replayFlag != "" {
		rec, err := gesture.LoadRecording(*replayFlag)
		if err != nil {
			return viewerOptions{}, err
		}
		opts.Sensor = gesture.NewReplaySensor(rec)
		opts.FrameInterval = rec.Interval()
	}
	return opts, nil
}

func run(v *viewer) {
	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			for i := 0; i < stepsPerRender; i++ {
				v.step(1.0 / config.FramesPerSecond)
			}
			v.draw()
		}
	}
}
