package components

// LifetimeComponent 实体存活上限
// 到时后实体被删除，用于兜底清理永远追不上目标的子弹
type LifetimeComponent struct {
	Timer TimerComponent // 一次性计时器
}
