package config

import "image/color"

// 桌面端窗口
const (
	GameWindowWidth  = 800
	GameWindowHeight = 480
	GameWindowTitle  = "Keep the Keep Moving!"
)

// 桌面端调色板
var (
	BackgroundColor = color.RGBA{R: 24, G: 20, B: 37, A: 255}
	FloorColor      = color.RGBA{R: 58, G: 68, B: 102, A: 255}
	FloorEdgeColor  = color.RGBA{R: 139, G: 155, B: 180, A: 255}
	PlayerColor     = color.RGBA{R: 99, G: 199, B: 77, A: 255}
	EnemyColor      = color.RGBA{R: 228, G: 59, B: 68, A: 255}
	EnemyFadeColor  = color.RGBA{R: 228, G: 59, B: 68, A: 110}
	DefenderColor   = color.RGBA{R: 254, G: 174, B: 52, A: 255}
	ProjectileColor = color.RGBA{R: 254, G: 231, B: 97, A: 255}
	HUDTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BannerTextColor = color.RGBA{R: 254, G: 231, B: 97, A: 255}
	OverlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)
