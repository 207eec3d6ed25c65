package components

// Scope 实体所属的状态作用域
// 离开作用域对应的状态时，作用域内的实体被无条件删除
type Scope int

const (
	// ScopeWave 存活于 Game.Wave 期间（玩家）
	ScopeWave Scope = iota
	// ScopeCombat 存活于 Wave.Running 期间（炮塔、敌人、子弹）
	ScopeCombat
)

// String 返回作用域名（日志用）
func (s Scope) String() string {
	switch s {
	case ScopeWave:
		return "Wave"
	case ScopeCombat:
		return "Combat"
	default:
		return "Unknown"
	}
}

// ScopeComponent 标记实体所属的作用域
type ScopeComponent struct {
	Scope Scope
}
