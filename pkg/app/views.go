package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/scenes"
)

// minLoadingTime 加载画面至少显示的时长（秒）
const minLoadingTime = 0.5

// loadingView 加载画面
// 资源全部是程序生成的，显示片刻后通知会话离开 Loading
type loadingView struct {
	session  *scenes.Session
	elapsed  float64
	notified bool
}

func (v *loadingView) Update(deltaTime float64) {
	if v.notified {
		return
	}
	v.elapsed += deltaTime
	if v.elapsed >= minLoadingTime {
		v.notified = true
		log.Printf("[App] Assets ready after %.2fs", v.elapsed)
		v.session.AssetsLoaded()
	}
}

func (v *loadingView) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	hud := v.session.Snapshot().HUD
	drawText(screen, hud.Title, config.GameWindowWidth/2, config.GameWindowHeight/2, text.AlignCenter, config.HUDTextColor)
}

// menuView 主菜单
type menuView struct {
	session *scenes.Session
}

func (v *menuView) Update(float64) {}

func (v *menuView) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	hud := v.session.Snapshot().HUD
	centerX, centerY := float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2
	drawText(screen, hud.Title, centerX, centerY-30, text.AlignCenter, config.BannerTextColor)
	drawText(screen, hud.Prompt, centerX, centerY+10, text.AlignCenter, config.HUDTextColor)
}

// gameView 局内画面：竞技场、实体和 HUD
type gameView struct {
	session *scenes.Session
}

func (v *gameView) Update(float64) {}

func (v *gameView) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := v.session.Snapshot()

	drawArena(screen, v.session.Arena(), v.session.Tiles(), snap.CameraX, snap.CameraY)
	for _, sp := range snap.Sprites {
		drawSprite(screen, sp, snap.CameraX, snap.CameraY)
	}
	drawHUD(screen, snap.HUD)
}
