package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/shooter/pkg/app"
	"github.com/decker502/shooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏参数配置文件路径（默认使用内嵌配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 必须在加载任何配置之前初始化内嵌资源
	embedded.Init(dataFS)

	shooter, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，启动错误直接写到 stderr
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	w, h := shooter.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("TOP-DOWN Shooting Game")
	ebiten.SetTPS(shooter.TPS())

	if err := ebiten.RunGame(shooter); err != nil {
		log.Fatal(err)
	}
}
