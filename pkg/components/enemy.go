package components

// EnemyState 敌人状态
type EnemyState int

const (
	// EnemySpawning 出生保护期：不移动、不可被锁定、不造成伤害
	EnemySpawning EnemyState = iota
	// EnemyActive 追击玩家
	EnemyActive
	// EnemyDead 死亡动画期间，计时结束后删除
	EnemyDead
)

// String 返回状态名（日志用）
func (s EnemyState) String() string {
	switch s {
	case EnemySpawning:
		return "Spawning"
	case EnemyActive:
		return "Active"
	case EnemyDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// EnemyComponent 敌人专属数据
type EnemyComponent struct {
	State      EnemyState
	SpawnTimer TimerComponent // 出生保护期（一次性）
	DeathTimer TimerComponent // 死亡动画时长（一次性）
	Damage     int            // 接触玩家造成的伤害
}
