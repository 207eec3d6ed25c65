package components

// HealthComponent 可受伤实体的生命值
// CurrentHealth <= MaxHealth，两者均非负。
// 生命值归零不会自动删除实体，由对应系统观察 CurrentHealth == 0 后处理死亡
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
