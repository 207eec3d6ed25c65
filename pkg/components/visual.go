package components

// VisualKind 渲染端用来选择精灵的实体类别
type VisualKind int

const (
	VisualPlayer VisualKind = iota
	VisualEnemy
	VisualDefender
	VisualProjectile
)

// String 返回类别名
func (k VisualKind) String() string {
	switch k {
	case VisualPlayer:
		return "player"
	case VisualEnemy:
		return "enemy"
	case VisualDefender:
		return "defender"
	case VisualProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// VisualComponent 标记实体需要被渲染
type VisualComponent struct {
	Kind VisualKind
}
