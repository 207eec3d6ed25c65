package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/scenes"
	"github.com/gonewx/keepmoving/pkg/systems"
)

// hudFace HUD 使用的位图字体
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// worldToScreen 世界坐标（原点在竞技场中心，Y 轴向上）转换为屏幕坐标
func worldToScreen(x, y, camX, camY float64) (float64, float64) {
	sx := x - camX + config.GameWindowWidth/2
	sy := config.GameWindowHeight/2 - (y - camY)
	return sx, sy
}

// drawArena 绘制地板和可活动区域边框
func drawArena(screen *ebiten.Image, arena *systems.Arena, tiles [][]int, camX, camY float64) {
	originX := float64(config.AreaTilesX) / 2 * config.TileSize
	originY := float64(config.AreaTilesY) / 2 * config.TileSize

	for ty := arena.Area.MinY; ty <= arena.Area.MaxY && ty < len(tiles); ty++ {
		for tx := arena.Area.MinX; tx <= arena.Area.MaxX && tx < len(tiles[ty]); tx++ {
			// 以地砖左上角为锚点
			wx := float64(tx)*config.TileSize - originX
			wy := float64(ty+1)*config.TileSize - originY
			sx, sy := worldToScreen(wx, wy, camX, camY)
			clr := config.FloorColor
			if !systems.IsInteriorTile(tiles[ty][tx]) {
				clr = config.FloorEdgeColor
			}
			vector.DrawFilledRect(screen, float32(sx), float32(sy), config.TileSize-1, config.TileSize-1, clr, false)
		}
	}

	p := arena.Playable
	left, top := worldToScreen(p.Min.X, p.Max.Y, camX, camY)
	vector.StrokeRect(screen, float32(left), float32(top),
		float32(p.Max.X-p.Min.X), float32(p.Max.Y-p.Min.Y), 1, config.FloorEdgeColor, false)
}

// drawSprite 按类别绘制一个实体
func drawSprite(screen *ebiten.Image, sp scenes.Sprite, camX, camY float64) {
	sx, sy := worldToScreen(sp.X, sp.Y, camX, camY)
	x, y := float32(sx), float32(sy)
	r := float32(sp.Radius)
	if r <= 0 {
		r = 6
	}

	switch sp.Kind {
	case components.VisualPlayer:
		vector.DrawFilledCircle(screen, x, y, r, config.PlayerColor, true)
		// 朝向指示线，Rotation 相对 +Y
		hx := x + float32(math.Sin(sp.Rotation))*r*1.5
		hy := y - float32(math.Cos(sp.Rotation))*r*1.5
		vector.StrokeLine(screen, x, y, hx, hy, 2, config.PlayerColor, true)
	case components.VisualEnemy:
		clr := color.Color(config.EnemyColor)
		// 出生和死亡帧半透明
		if sp.Frame >= 2 {
			clr = config.EnemyFadeColor
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	case components.VisualDefender:
		vector.DrawFilledRect(screen, x-5, y-5, 10, 10, config.DefenderColor, false)
	case components.VisualProjectile:
		vector.DrawFilledCircle(screen, x, y, r, config.ProjectileColor, true)
	}
}

// drawText 以 (x, y) 为锚点绘制一行文本
func drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, hudFace, op)
}

// drawHUD 绘制局内 HUD
func drawHUD(screen *ebiten.Image, hud scenes.HUD) {
	const margin = 8
	drawText(screen, hud.Wave, margin, margin, text.AlignStart, config.HUDTextColor)
	drawText(screen, hud.Time, config.GameWindowWidth/2, margin, text.AlignCenter, config.HUDTextColor)
	drawText(screen, hud.Health, config.GameWindowWidth-margin, margin, text.AlignEnd, config.HUDTextColor)

	centerX, centerY := float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2
	drawText(screen, hud.Countdown, centerX, centerY-40, text.AlignCenter, config.BannerTextColor)
	drawText(screen, hud.Banner, centerX, centerY-40, text.AlignCenter, config.BannerTextColor)

	if hud.Paused != "" {
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, config.OverlayColor, false)
		drawText(screen, hud.Paused, centerX, centerY, text.AlignCenter, config.HUDTextColor)
	}
}
