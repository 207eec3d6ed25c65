package game

import "strings"

// AppState 顶层状态
type AppState int

const (
	AppLoading AppState = iota
	AppMenu
	AppGame
)

// GameState Game 的子状态
type GameState int

const (
	GameShop GameState = iota
	GameWave
)

// WaveState Game.Wave 的子状态
type WaveState int

const (
	WavePreparation WaveState = iota
	WaveRunning
	WaveComplete
	WaveGameOver
)

// PauseState 与 Game 正交的暂停状态
type PauseState int

const (
	PauseRunning PauseState = iota
	PausePaused
)

// RunState 状态树的当前值
//
// 子状态字段只在父状态激活时有意义：
//   - Game、Pause 仅在 App == AppGame 时有效
//   - Wave 仅在 Game == GameWave 时有效
//
// 进入父状态时子状态重置为默认值（见 Next）。
type RunState struct {
	App   AppState
	Game  GameState
	Wave  WaveState
	Pause PauseState
}

// InitialRunState 启动时的状态
func InitialRunState() RunState {
	return RunState{App: AppLoading}
}

// InGame 是否处于 Game
func (s RunState) InGame() bool {
	return s.App == AppGame
}

// InWave 是否处于 Game.Wave
func (s RunState) InWave() bool {
	return s.App == AppGame && s.Game == GameWave
}

// Is 是否处于 Game.Wave 的指定子状态
func (s RunState) Is(w WaveState) bool {
	return s.InWave() && s.Wave == w
}

// Paused 游戏是否暂停
func (s RunState) Paused() bool {
	return s.App == AppGame && s.Pause == PausePaused
}

// Simulating 可暂停的系统本 tick 是否应该运行
func (s RunState) Simulating() bool {
	return s.InGame() && s.Pause == PauseRunning
}

// Path 当前激活的状态节点，从根到叶
func (s RunState) Path() []StateNode {
	switch s.App {
	case AppLoading:
		return []StateNode{NodeLoading}
	case AppMenu:
		return []StateNode{NodeMenu}
	}

	path := []StateNode{NodeGame}
	if s.Game == GameShop {
		path = append(path, NodeShop)
	} else {
		path = append(path, NodeWave, waveNode(s.Wave))
	}
	if s.Pause == PausePaused {
		path = append(path, NodePaused)
	}
	return path
}

// String 形如 "Game.Wave.Running"，暂停时追加 "+Paused"
func (s RunState) String() string {
	path := s.Path()
	names := make([]string, 0, len(path))
	paused := false
	for _, n := range path {
		if n == NodePaused {
			paused = true
			continue
		}
		names = append(names, n.String())
	}
	out := strings.Join(names, ".")
	if paused {
		out += "+Paused"
	}
	return out
}

func waveNode(w WaveState) StateNode {
	switch w {
	case WaveRunning:
		return NodeRunning
	case WaveComplete:
		return NodeComplete
	case WaveGameOver:
		return NodeGameOver
	default:
		return NodePreparation
	}
}
