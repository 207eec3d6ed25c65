package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/input"
	"github.com/gonewx/keepmoving/pkg/scenes"
	"github.com/gonewx/keepmoving/pkg/systems"
)

// fakeCanvas 内存中的字符画布
type fakeCanvas struct {
	width, height int
	cells         [][]rune
}

func newFakeCanvas(width, height int) *fakeCanvas {
	c := &fakeCanvas{width: width, height: height, cells: make([][]rune, height)}
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
	}
	return c
}

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[y][x] = primary
}

func (c *fakeCanvas) Size() (int, int) {
	return c.width, c.height
}

func (c *fakeCanvas) row(y int) string {
	return string(c.cells[y])
}

func (c *fakeCanvas) contains(s string) bool {
	for y := range c.cells {
		if strings.Contains(c.row(y), s) {
			return true
		}
	}
	return false
}

func TestIntentsForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want input.IntentSet
	}{
		{"方向键上", tcell.KeyUp, 0, input.NewIntentSet(input.MoveUp)},
		{"字母 a", tcell.KeyRune, 'a', input.NewIntentSet(input.MoveLeft)},
		{"空格确认", tcell.KeyRune, ' ', input.NewIntentSet(input.Confirm)},
		{"Escape 开关菜单", tcell.KeyEscape, 0, input.NewIntentSet(input.OpenMenu, input.CloseMenu)},
		{"未绑定字母", tcell.KeyRune, 'z', input.NewIntentSet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := input.NewIntentSet(intentsForKey(tt.key, tt.r)...)
			if got != tt.want {
				t.Errorf("intentsForKey = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestKeyStateHoldWindow 按下后在窗口内保持，超时后松开
func TestKeyStateHoldWindow(t *testing.T) {
	keys := newKeyState()
	start := time.Unix(0, 0)
	keys.press(input.MoveUp, start)

	if got := keys.intents(start.Add(keyHoldWindow / 2)); !got.Has(input.MoveUp) {
		t.Error("intent should be held inside the window")
	}
	if got := keys.intents(start.Add(keyHoldWindow)); got.Has(input.MoveUp) {
		t.Error("intent should be released after the window")
	}
}

// TestKeyStateOpposite 按下相反方向时松开原方向
func TestKeyStateOpposite(t *testing.T) {
	keys := newKeyState()
	now := time.Unix(0, 0)
	keys.press(input.MoveLeft, now)
	keys.press(input.MoveRight, now)

	got := keys.intents(now)
	if got.Has(input.MoveLeft) || !got.Has(input.MoveRight) {
		t.Errorf("intents = %v, want right only", got)
	}
}

func TestIsQuit(t *testing.T) {
	menu := game.RunState{App: game.AppMenu}
	inGame := game.RunState{App: game.AppGame}
	if !isQuit(tcell.KeyRune, 'q', menu) {
		t.Error("q should quit from the menu")
	}
	if isQuit(tcell.KeyRune, 'q', inGame) {
		t.Error("q must not quit during a run")
	}
	if !isQuit(tcell.KeyCtrlC, 0, inGame) {
		t.Error("Ctrl+C should always quit")
	}
}

func TestCellOfRoundTrip(t *testing.T) {
	const width, height = 80, 24
	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {10, 3}} {
		x, y := worldOf(cell[0], cell[1], 12, -40, width, height)
		col, row := cellOf(x, y, 12, -40, width, height)
		if col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> world (%v, %v) -> cell (%d, %d)", cell, x, y, col, row)
		}
	}
}

func TestDrawSnapshotMenu(t *testing.T) {
	c := newFakeCanvas(80, 24)
	snap := scenes.Snapshot{
		State: game.RunState{App: game.AppMenu},
		HUD:   scenes.HUD{Title: scenes.TitleText, Prompt: scenes.StartText},
	}
	drawSnapshot(c, snap, systems.NewArena())

	if !c.contains(scenes.TitleText) || !c.contains(scenes.StartText) {
		t.Error("menu title and prompt should be drawn")
	}
}

// TestDrawSnapshotWave 玩家位于镜头中心，HUD 在第一行
func TestDrawSnapshotWave(t *testing.T) {
	c := newFakeCanvas(80, 24)
	snap := scenes.Snapshot{
		State: game.RunState{App: game.AppGame, Game: game.GameWave, Wave: game.WavePreparation},
		Sprites: []scenes.Sprite{
			{ID: 2, Kind: components.VisualPlayer, X: 1, Y: 1},
		},
		HUD: scenes.HUD{Wave: "Wave 1", Time: "Time: 15/15", Health: "HP: 10/10", Countdown: "3"},
	}
	drawSnapshot(c, snap, systems.NewArena())

	col, row := cellOf(1, 1, 0, 0, 80, 24)
	if c.cells[row][col] != '@' {
		t.Errorf("cell (%d, %d) = %q, want player", col, row, c.cells[row][col])
	}
	top := c.row(0)
	for _, s := range []string{"Wave 1", "Time: 15/15", "HP: 10/10"} {
		if !strings.Contains(top, s) {
			t.Errorf("HUD row %q missing %q", top, s)
		}
	}
	if !c.contains("3") {
		t.Error("countdown should be drawn")
	}
	if c.cells[12][2] != '.' {
		t.Errorf("floor cell = %q, want '.'", c.cells[12][2])
	}
}
