package main

import (
	"flag"
	"log"

	"github.com/decker502/mathcloud/pkg/app"
	"github.com/decker502/mathcloud/pkg/config"
	"github.com/decker502/mathcloud/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", config.DefaultSequencePath, "Shape sequence config (YAML)")
	shapeFlag   = flag.String("shape", "", "Start with a specific shape (e.g., --shape=rose)")
	countFlag   = flag.Int("count", 0, "Override particle count from the config")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	gestureFlag = flag.String("gesture", app.GesturePointer, "Gesture source: pointer, replay or off")
	replayFlag  = flag.String("replay", "", "Gesture recording used with --gesture=replay")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	mathApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ConfigPath:  *configFlag,
		Shape:       *shapeFlag,
		Count:       *countFlag,
		Seed:        *seedFlag,
		GestureMode: *gestureFlag,
		ReplayPath:  *replayFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FramesPerSecond)

	runErr := ebiten.RunGame(mathApp)

	// 退出前停止手势采集
	mathApp.GetSceneManager().Close()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
