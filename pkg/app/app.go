// Package app 提供桌面端的 ebiten.Game 包装器
//
// App 只负责设备相关的部分：键盘读入、窗口、音频上下文和绘制。
// 所有玩法规则都在 scenes.Session 中，App 每帧调用一次 Session.Tick。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/keepmoving/internal/audio"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/scenes"
)

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "keepmoving"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 会话随机数种子
	Seed uint64
	// Gameplay 玩法数值，为 nil 时使用默认值
	Gameplay *config.GameplayConfig
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	session      *scenes.Session
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	player       *audio.EbitenPlayer

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := game.OpenSettingsManager(settingsAppName)
	if err != nil {
		// 降级模式：设置只保存在内存中
		log.Printf("[App] Warning: %v", err)
	}

	audioContext := ebitenaudio.NewContext(audio.SampleRate)
	player, err := audio.NewEbitenPlayer(audioContext, settings)
	if err != nil {
		return nil, fmt.Errorf("音频初始化失败: %w", err)
	}

	session, err := scenes.NewSession(scenes.SessionConfig{
		Gameplay: cfg.Gameplay,
		Seed:     cfg.Seed,
		Audio:    player,
	})
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.AppLoading, &loadingView{session: session})
	sceneManager.Register(game.AppMenu, &menuView{session: session})
	sceneManager.Register(game.AppGame, &gameView{session: session})
	sceneManager.SwitchToState(session.State().App)

	a := &App{
		session:      session,
		sceneManager: sceneManager,
		settings:     settings,
		player:       player,
	}
	session.SetTransitionListener(a.onTransition)

	if settings.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	log.Printf("[App] Initialized (seed=%d)", cfg.Seed)
	return a, nil
}

// onTransition 顶层状态变化时切换场景
func (a *App) onTransition(from, to game.RunState, effects []game.Effect) {
	log.Printf("[App] %v -> %v (run=%s, %d effects)", from, to, a.session.RunID(), len(effects))
	if from.App != to.App {
		a.sceneManager.SwitchToState(to.App)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.session.Tick(deltaTime, readIntents())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.Update(func(s *game.Settings) { s.Fullscreen = fullscreen })
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边为黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放音频播放器
func (a *App) Close() {
	a.player.Close()
}
