// keepmoving 桌面端入口
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/keepmoving/data"
	"github.com/gonewx/keepmoving/pkg/app"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Uint64("seed", 0, "随机数种子（0 表示使用当前时间）")
	configPath := flag.String("config", config.GameplayConfigPath, "玩法配置文件（data/ 开头时读取内嵌文件）")
	flag.Parse()

	// 必须在加载任何配置之前初始化
	embedded.Init(data.FS)

	gameplay, err := config.LoadGameplayConfig(*configPath)
	if err != nil {
		log.Fatalf("玩法配置加载失败: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Seed:     *seed,
		Gameplay: gameplay,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
