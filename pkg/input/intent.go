// Package input 定义与设备无关的输入意图
//
// 前端（ebiten 键盘、tcell 终端）把按键映射为 Intent，
// 模拟核心只读取每 tick 的 IntentSet，从不接触原始设备状态。
package input

import (
	"strings"

	"github.com/gonewx/keepmoving/pkg/utils"
)

// Intent 命名输入意图
type Intent uint16

const (
	MoveUp Intent = 1 << iota
	MoveDown
	MoveLeft
	MoveRight
	Confirm
	Cancel
	OpenMenu
	CloseMenu
)

var intentNames = []struct {
	intent Intent
	name   string
}{
	{MoveUp, "up"},
	{MoveDown, "down"},
	{MoveLeft, "left"},
	{MoveRight, "right"},
	{Confirm, "confirm"},
	{Cancel, "cancel"},
	{OpenMenu, "open_menu"},
	{CloseMenu, "close_menu"},
}

// IntentSet 一个 tick 内所有按住的意图（位集合）
type IntentSet uint16

// NewIntentSet 由若干意图构造集合
func NewIntentSet(intents ...Intent) IntentSet {
	var s IntentSet
	for _, in := range intents {
		s = s.With(in)
	}
	return s
}

// Has 是否包含意图
func (s IntentSet) Has(in Intent) bool {
	return s&IntentSet(in) != 0
}

// With 返回加入意图后的集合
func (s IntentSet) With(in Intent) IntentSet {
	return s | IntentSet(in)
}

// JustPressed 本 tick 新按下的意图（上一 tick 未按住）
func (s IntentSet) JustPressed(previous IntentSet) IntentSet {
	return s &^ previous
}

// MoveVector 按住的方向键之和，未归一化（Y 轴向上）
func (s IntentSet) MoveVector() utils.Vec2 {
	var v utils.Vec2
	if s.Has(MoveUp) {
		v.Y++
	}
	if s.Has(MoveDown) {
		v.Y--
	}
	if s.Has(MoveLeft) {
		v.X--
	}
	if s.Has(MoveRight) {
		v.X++
	}
	return v
}

// String 调试输出，如 "up|confirm"
func (s IntentSet) String() string {
	if s == 0 {
		return "none"
	}
	parts := make([]string, 0, len(intentNames))
	for _, n := range intentNames {
		if s.Has(n.intent) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
