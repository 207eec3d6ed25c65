package components

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 一次性计时器：到时后保持完成状态，只报告一次"刚完成"
	TimerOnce TimerMode = iota
	// TimerRepeating 重复计时器：到时后减去时长重新计时，每次回绕报告一次"刚完成"
	TimerRepeating
)

// TimerComponent 通用计时器
// 用于刷怪节奏、无敌时间、死亡动画、波次时长、倒计时等所有时间驱动的行为
//
// 不变式：Elapsed <= Duration。
// 计时逻辑见 systems.TickTimer，组件本身只存储数据。
type TimerComponent struct {
	Name        string    // 计时器名称，如 "wave_spawn"，仅用于日志
	Duration    float64   // 时长（秒）
	Elapsed     float64   // 已过时间（秒）
	Mode        TimerMode // 一次性 / 重复
	Finished    bool      // 一次性计时器是否已完成（饱和）
	Completions int       // 最近一次 tick 中完成的次数（一次性计时器最多为 1）
}

// minTimerDuration 计时器最小时长，零时长会导致重复计时器每 tick 无限触发
const minTimerDuration = 0.001

// NewTimer 创建计时器，时长被限制在 minTimerDuration 以上
func NewTimer(name string, duration float64, mode TimerMode) TimerComponent {
	if !(duration >= minTimerDuration) {
		duration = minTimerDuration
	}
	return TimerComponent{
		Name:     name,
		Duration: duration,
		Mode:     mode,
	}
}
