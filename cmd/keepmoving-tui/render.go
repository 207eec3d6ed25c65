package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/scenes"
	"github.com/gonewx/keepmoving/pkg/systems"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// 每个字符单元覆盖的世界像素（字符约为 1:2）
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

var (
	styleDefault    = tcell.StyleDefault
	styleFloor      = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemyFaded = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleDefender   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// canvas tcell.Screen 中渲染用到的部分
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// cellOf 世界坐标所在的字符单元，镜头位于屏幕中心
func cellOf(x, y, camX, camY float64, width, height int) (int, int) {
	col := width/2 + int(math.Floor((x-camX)/cellWidth))
	row := height/2 - int(math.Floor((y-camY)/cellHeight))
	return col, row
}

// worldOf 字符单元中心的世界坐标
func worldOf(col, row int, camX, camY float64, width, height int) (float64, float64) {
	x := camX + (float64(col-width/2)+0.5)*cellWidth
	y := camY - (float64(row-height/2)-0.5)*cellHeight
	return x, y
}

// drawSnapshot 把一帧画到字符画布上
func drawSnapshot(c canvas, snap scenes.Snapshot, arena *systems.Arena) {
	width, height := c.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetContent(x, y, ' ', nil, styleDefault)
		}
	}

	if snap.State.App != game.AppGame {
		drawCentered(c, height/2-1, snap.HUD.Title, styleBanner)
		drawCentered(c, height/2+1, snap.HUD.Prompt, styleDefault)
		return
	}

	if snap.State.InWave() {
		drawFloor(c, snap, arena)
		for _, sp := range snap.Sprites {
			drawSprite(c, sp, snap)
		}
	}
	drawHUD(c, snap.HUD)
}

func drawFloor(c canvas, snap scenes.Snapshot, arena *systems.Arena) {
	width, height := c.Size()
	halfX := float64(config.ArenaTilesX) / 2 * config.TileSize
	halfY := float64(config.ArenaTilesY) / 2 * config.TileSize

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			x, y := worldOf(col, row, snap.CameraX, snap.CameraY, width, height)
			switch {
			case arena.Playable.ContainsPoint(utils.Vec2{X: x, Y: y}):
				c.SetContent(col, row, '.', nil, styleFloor)
			case math.Abs(x) <= halfX && math.Abs(y) <= halfY:
				c.SetContent(col, row, '#', nil, styleWall)
			}
		}
	}
}

func drawSprite(c canvas, sp scenes.Sprite, snap scenes.Snapshot) {
	width, height := c.Size()
	col, row := cellOf(sp.X, sp.Y, snap.CameraX, snap.CameraY, width, height)
	if col < 0 || col >= width || row < 1 || row >= height {
		return
	}

	switch sp.Kind {
	case components.VisualPlayer:
		c.SetContent(col, row, '@', nil, stylePlayer)
	case components.VisualEnemy:
		switch {
		case sp.Frame == 2:
			c.SetContent(col, row, 'x', nil, styleEnemyFaded)
		case sp.Frame > 2:
			c.SetContent(col, row, 'o', nil, styleEnemyFaded)
		default:
			c.SetContent(col, row, 'Z', nil, styleEnemy)
		}
	case components.VisualDefender:
		c.SetContent(col, row, 'D', nil, styleDefender)
	case components.VisualProjectile:
		c.SetContent(col, row, '*', nil, styleProjectile)
	}
}

func drawHUD(c canvas, hud scenes.HUD) {
	width, height := c.Size()
	drawString(c, 1, 0, hud.Wave, styleDefault)
	drawCentered(c, 0, hud.Time, styleDefault)
	drawString(c, width-1-len(hud.Health), 0, hud.Health, styleDefault)

	drawCentered(c, height/2-3, hud.Countdown, styleBanner)
	drawCentered(c, height/2-3, hud.Banner, styleBanner)
	drawCentered(c, height/2, hud.Paused, styleBanner)
}

func drawCentered(c canvas, row int, s string, style tcell.Style) {
	width, _ := c.Size()
	drawString(c, (width-len(s))/2, row, s, style)
}

func drawString(c canvas, col, row int, s string, style tcell.Style) {
	width, height := c.Size()
	if row < 0 || row >= height {
		return
	}
	for i, r := range s {
		if x := col + i; x >= 0 && x < width {
			c.SetContent(x, row, r, nil, style)
		}
	}
}
