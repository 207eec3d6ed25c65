package systems

import (
	"strconv"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/game"
)

// WaveController 单个波次的节奏
//
// 进入 Game.Wave 时按波次等级创建，离开时丢弃。
// 同一时刻只推进与当前 WaveState 对应的计时器：
//   - Preparation: 倒计时 3-2-1-Go，每步一个一次性计时器
//   - Running: 波次时长（一次性）+ 刷怪间隔（重复）
//   - Complete / GameOver: 过渡延迟
type WaveController struct {
	Level       int
	SpawnAmount int

	Countdown      int
	CountdownTimer components.TimerComponent
	SpawnTimer     components.TimerComponent
	WaveTimer      components.TimerComponent
	CompleteTimer  components.TimerComponent
	GameOverTimer  components.TimerComponent

	countdownStart int
}

// WaveTick 一次 Advance 的结果
type WaveTick struct {
	// Event 本 tick 到时的过渡事件，Fired 为 false 时无意义
	Event game.Event
	Fired bool
	// Spawns 需要生成的敌人数量（刷怪完成次数 × SpawnAmount）
	Spawns int
	// CountdownStepped 倒计时前进了一步
	CountdownStepped bool
}

// NewWaveController 按等级计算刷怪参数并创建全部计时器
func NewWaveController(level int, wave config.WaveConfig, formula *config.WaveFormula) *WaveController {
	amount := max(wave.BaseSpawnAmount, 0)
	interval := wave.BaseSpawnInterval
	if formula != nil {
		amount = formula.SpawnAmount(level)
		interval = formula.SpawnInterval(level)
	}

	countdown := max(wave.PreparationCountdown, 0)
	return &WaveController{
		Level:          level,
		SpawnAmount:    amount,
		Countdown:      countdown,
		countdownStart: countdown,
		CountdownTimer: components.NewTimer("wave_countdown", wave.PreparationStepTime, components.TimerOnce),
		SpawnTimer:     components.NewTimer("wave_spawn", interval, components.TimerRepeating),
		WaveTimer:      components.NewTimer("wave_duration", wave.Duration, components.TimerOnce),
		CompleteTimer:  components.NewTimer("wave_complete", wave.CompleteTransitionTime, components.TimerOnce),
		GameOverTimer:  components.NewTimer("wave_game_over", wave.GameOverTransitionTime, components.TimerOnce),
	}
}

// SpawnInterval 刷怪间隔（秒）
func (w *WaveController) SpawnInterval() float64 {
	return w.SpawnTimer.Duration
}

// Enter 进入波次子状态时重置对应计时器
func (w *WaveController) Enter(state game.WaveState) {
	switch state {
	case game.WavePreparation:
		w.Countdown = w.countdownStart
		ResetTimer(&w.CountdownTimer)
	case game.WaveRunning:
		ResetTimer(&w.WaveTimer)
		ResetTimer(&w.SpawnTimer)
	case game.WaveComplete:
		ResetTimer(&w.CompleteTimer)
	case game.WaveGameOver:
		ResetTimer(&w.GameOverTimer)
	}
}

// Advance 推进当前子状态的计时器
func (w *WaveController) Advance(dt float64, state game.WaveState) WaveTick {
	var tick WaveTick

	switch state {
	case game.WavePreparation:
		if TickTimer(&w.CountdownTimer, dt) == 0 {
			break
		}
		if w.Countdown > 0 {
			w.Countdown--
			ResetTimer(&w.CountdownTimer)
			tick.CountdownStepped = true
			break
		}
		tick.Event, tick.Fired = game.EventPreparationFinished, true

	case game.WaveRunning:
		tick.Spawns = TickTimer(&w.SpawnTimer, dt) * w.SpawnAmount
		if TickTimer(&w.WaveTimer, dt) > 0 {
			tick.Event, tick.Fired = game.EventWaveFinished, true
		}

	case game.WaveComplete:
		if TickTimer(&w.CompleteTimer, dt) > 0 {
			tick.Event, tick.Fired = game.EventCompleteFinished, true
		}

	case game.WaveGameOver:
		if TickTimer(&w.GameOverTimer, dt) > 0 {
			tick.Event, tick.Fired = game.EventGameOverFinished, true
		}
	}

	return tick
}

// CountdownText 倒计时显示："3"、"2"、"1"，归零后为 "Go!"
func (w *WaveController) CountdownText() string {
	if w.Countdown > 0 {
		return strconv.Itoa(w.Countdown)
	}
	return "Go!"
}

// TimeRemaining 波次剩余时间（秒）
func (w *WaveController) TimeRemaining() float64 {
	return TimerRemaining(&w.WaveTimer)
}
