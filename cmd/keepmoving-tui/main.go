// keepmoving-tui 在终端里运行游戏
//
// 与桌面端共用同一个 Session，渲染为字符画，音频使用 beep。
// 标准输出归 tcell 所有，日志写入 -log 指定的文件。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/keepmoving/data"
	"github.com/gonewx/keepmoving/internal/audio"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/embedded"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/scenes"
)

const frameInterval = time.Second / 60

func main() {
	logPath := flag.String("log", "", "日志文件路径（为空则不记录）")
	seed := flag.Uint64("seed", 0, "随机数种子（0 表示使用当前时间）")
	configPath := flag.String("config", config.GameplayConfigPath, "玩法配置文件")
	mute := flag.Bool("mute", false, "关闭声音")
	flag.Parse()

	if err := run(*logPath, *seed, *configPath, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string, seed uint64, configPath string, mute bool) error {
	closeLog, err := setupLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	embedded.Init(data.FS)
	gameplay, err := config.LoadGameplayConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load gameplay config: %w", err)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	settings, err := game.OpenSettingsManager("keepmoving")
	if err != nil {
		log.Printf("[TUI] Warning: %v", err)
	}

	var sink game.AudioSink = game.NopAudioSink{}
	if !mute {
		player := audio.NewBeepPlayer(settings)
		if err := player.Initialize(); err != nil {
			// 没有声音也能玩
			log.Printf("[TUI] Audio initialization failed: %v", err)
		} else {
			defer player.Cleanup()
			sink = player
		}
	}

	session, err := scenes.NewSession(scenes.SessionConfig{
		Gameplay: gameplay,
		Seed:     seed,
		Audio:    sink,
	})
	if err != nil {
		return err
	}
	session.SetTransitionListener(func(from, to game.RunState, effects []game.Effect) {
		log.Printf("[TUI] %v -> %v (run=%s)", from, to, session.RunID())
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	loop(screen, session)
	return nil
}

// setupLog 把 log 输出重定向到文件，路径为空时丢弃
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loop 输入事件由单独的 goroutine 读取，模拟和绘制只在主 goroutine 中进行
func loop(screen tcell.Screen, session *scenes.Session) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	keys := newKeyState()
	last := time.Now()
	loaded := false

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev.Key(), ev.Rune(), session.State()) {
					return
				}
				now := time.Now()
				for _, in := range intentsForKey(ev.Key(), ev.Rune()) {
					keys.press(in, now)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			session.Tick(dt, keys.intents(now))

			drawSnapshot(screen, session.Snapshot(), session.Arena())
			screen.Show()

			// 第一帧画出来之后离开 Loading
			if !loaded {
				loaded = true
				session.AssetsLoaded()
			}
		}
	}
}

// isQuit Ctrl+C 随时退出，菜单中 q 退出
func isQuit(key tcell.Key, r rune, state game.RunState) bool {
	if key == tcell.KeyCtrlC {
		return true
	}
	return state.App == game.AppMenu && key == tcell.KeyRune && (r == 'q' || r == 'Q')
}
