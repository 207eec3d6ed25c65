package systems

import (
	"math"

	"github.com/gonewx/keepmoving/pkg/components"
)

// TickTimer 推进计时器并返回本次完成的次数
//
// 一次性计时器到时后饱和：Elapsed 停在 Duration，只在到时那一 tick 返回 1，
// 之后直到 ResetTimer 都返回 0。
// 重复计时器每次回绕减去 Duration，dt 跨越多个周期时返回多次。
// 负的 dt 按 0 处理。
func TickTimer(t *components.TimerComponent, dt float64) int {
	t.Completions = 0
	if t.Duration <= 0 {
		// 未经 NewTimer 构造的计时器，按最小时长处理
		t.Duration = components.NewTimer(t.Name, 0, t.Mode).Duration
	}
	if !(dt > 0) {
		return 0
	}

	switch t.Mode {
	case components.TimerRepeating:
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			n := math.Floor(t.Elapsed / t.Duration)
			t.Elapsed -= n * t.Duration
			if t.Elapsed < 0 {
				t.Elapsed = 0
			}
			// 浮点误差可能让余数仍然 >= Duration
			for t.Elapsed >= t.Duration {
				t.Elapsed -= t.Duration
				n++
			}
			t.Completions = int(n)
		}
	default:
		if t.Finished {
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.Finished = true
			t.Completions = 1
		}
	}
	return t.Completions
}

// JustFinished 最近一次 TickTimer 是否完成过
func JustFinished(t *components.TimerComponent) bool {
	return t.Completions > 0
}

// ResetTimer 重新开始计时
func ResetTimer(t *components.TimerComponent) {
	t.Elapsed = 0
	t.Finished = false
	t.Completions = 0
}

// TimerRemaining 剩余时间（秒）
func TimerRemaining(t *components.TimerComponent) float64 {
	return math.Max(0, t.Duration-t.Elapsed)
}
