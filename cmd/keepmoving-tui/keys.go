package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/keepmoving/pkg/input"
)

// keyHoldWindow 终端没有按键抬起事件，按下后在这个窗口内视为一直按住
// 需要覆盖终端自动重复的首次延迟
const keyHoldWindow = 300 * time.Millisecond

var opposite = map[input.Intent]input.Intent{
	input.MoveUp:    input.MoveDown,
	input.MoveDown:  input.MoveUp,
	input.MoveLeft:  input.MoveRight,
	input.MoveRight: input.MoveLeft,
}

// intentsForKey 终端按键对应的意图
func intentsForKey(key tcell.Key, r rune) []input.Intent {
	switch key {
	case tcell.KeyUp:
		return []input.Intent{input.MoveUp}
	case tcell.KeyDown:
		return []input.Intent{input.MoveDown}
	case tcell.KeyLeft:
		return []input.Intent{input.MoveLeft}
	case tcell.KeyRight:
		return []input.Intent{input.MoveRight}
	case tcell.KeyEnter:
		return []input.Intent{input.Confirm}
	case tcell.KeyEscape:
		return []input.Intent{input.OpenMenu, input.CloseMenu}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []input.Intent{input.Cancel}
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return []input.Intent{input.MoveUp}
		case 's', 'S':
			return []input.Intent{input.MoveDown}
		case 'a', 'A':
			return []input.Intent{input.MoveLeft}
		case 'd', 'D':
			return []input.Intent{input.MoveRight}
		case ' ':
			return []input.Intent{input.Confirm}
		case 'p', 'P':
			return []input.Intent{input.OpenMenu, input.CloseMenu}
		}
	}
	return nil
}

// keyState 记录每个意图最近一次按下的时间
type keyState struct {
	pressedAt map[input.Intent]time.Time
}

func newKeyState() *keyState {
	return &keyState{pressedAt: make(map[input.Intent]time.Time)}
}

// press 按下意图；方向意图会松开相反方向
func (k *keyState) press(in input.Intent, now time.Time) {
	k.pressedAt[in] = now
	if o, ok := opposite[in]; ok {
		delete(k.pressedAt, o)
	}
}

// intents 当前仍在按住窗口内的意图
func (k *keyState) intents(now time.Time) input.IntentSet {
	var set input.IntentSet
	for in, at := range k.pressedAt {
		if now.Sub(at) < keyHoldWindow {
			set = set.With(in)
		} else {
			delete(k.pressedAt, in)
		}
	}
	return set
}
