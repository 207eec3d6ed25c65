package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/keepmoving/pkg/input"
)

// keyBinding 按键到意图的映射
type keyBinding struct {
	key    ebiten.Key
	intent input.Intent
}

// defaultKeyBindings 方向键与 WASD 等价；Escape 同时用于打开和关闭暂停菜单
var defaultKeyBindings = []keyBinding{
	{ebiten.KeyArrowUp, input.MoveUp},
	{ebiten.KeyW, input.MoveUp},
	{ebiten.KeyArrowDown, input.MoveDown},
	{ebiten.KeyS, input.MoveDown},
	{ebiten.KeyArrowLeft, input.MoveLeft},
	{ebiten.KeyA, input.MoveLeft},
	{ebiten.KeyArrowRight, input.MoveRight},
	{ebiten.KeyD, input.MoveRight},
	{ebiten.KeyEnter, input.Confirm},
	{ebiten.KeySpace, input.Confirm},
	{ebiten.KeyBackspace, input.Cancel},
	{ebiten.KeyEscape, input.OpenMenu},
	{ebiten.KeyEscape, input.CloseMenu},
	{ebiten.KeyP, input.OpenMenu},
	{ebiten.KeyP, input.CloseMenu},
}

// intentsFrom 根据按住的按键构造意图集合
func intentsFrom(bindings []keyBinding, pressed func(ebiten.Key) bool) input.IntentSet {
	var set input.IntentSet
	for _, b := range bindings {
		if pressed(b.key) {
			set = set.With(b.intent)
		}
	}
	return set
}

// readIntents 读取当前键盘状态
func readIntents() input.IntentSet {
	return intentsFrom(defaultKeyBindings, ebiten.IsKeyPressed)
}
