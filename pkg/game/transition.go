package game

// Next 状态转换函数
//
// 根据当前状态和事件计算下一个状态，以及需要执行的进入/离开副作用。
// 副作用顺序：先由深到浅离开旧节点，再由浅到深进入新节点。
// 事件在当前状态下不被接受时返回原状态和 nil。
//
// 纯函数：不修改任何外部状态，调度器负责执行副作用。
func Next(s RunState, e Event) (RunState, []Effect) {
	next, ok := transition(s, e)
	if !ok {
		return s, nil
	}
	return next, diffPaths(s.Path(), next.Path())
}

// Accepts 事件在当前状态下是否会触发转换
func Accepts(s RunState, e Event) bool {
	_, ok := transition(s, e)
	return ok
}

func transition(s RunState, e Event) (RunState, bool) {
	switch e {
	case EventAssetsLoaded:
		if s.App == AppLoading {
			return RunState{App: AppMenu}, true
		}
	case EventStart:
		if s.App == AppMenu {
			return RunState{App: AppGame, Game: GameWave, Wave: WavePreparation, Pause: PauseRunning}, true
		}
	case EventPause:
		if s.InGame() && s.Pause == PauseRunning {
			s.Pause = PausePaused
			return s, true
		}
	case EventResume:
		if s.InGame() && s.Pause == PausePaused {
			s.Pause = PauseRunning
			return s, true
		}
	}

	// 以下转换只在未暂停的 Game 中发生
	if !s.Simulating() {
		return s, false
	}

	switch e {
	case EventShopDone:
		if s.Game == GameShop {
			s.Game = GameWave
			s.Wave = WavePreparation
			return s, true
		}
	case EventPreparationFinished:
		if s.Is(WavePreparation) {
			s.Wave = WaveRunning
			return s, true
		}
	case EventWaveFinished:
		if s.Is(WaveRunning) {
			s.Wave = WaveComplete
			return s, true
		}
	case EventPlayerDied:
		if s.Is(WaveRunning) {
			s.Wave = WaveGameOver
			return s, true
		}
	case EventCompleteFinished:
		if s.Is(WaveComplete) {
			s.Game = GameShop
			s.Wave = WavePreparation
			return s, true
		}
	case EventGameOverFinished:
		if s.Is(WaveGameOver) {
			return RunState{App: AppMenu}, true
		}
	}
	return s, false
}

// diffPaths 计算两条根路径之间的离开/进入副作用
func diffPaths(from, to []StateNode) []Effect {
	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	effects := make([]Effect, 0, len(from)-common+len(to)-common)
	for i := len(from) - 1; i >= common; i-- {
		effects = append(effects, Exit(from[i]))
	}
	for i := common; i < len(to); i++ {
		effects = append(effects, Enter(to[i]))
	}
	return effects
}
