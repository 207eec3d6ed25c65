package components

// PlayerState 玩家状态
type PlayerState int

const (
	// PlayerNormal 正常状态，可受伤
	PlayerNormal PlayerState = iota
	// PlayerInvincible 受伤后的无敌窗口，忽略所有伤害
	PlayerInvincible
	// PlayerDead 死亡，死亡计时器结束后移除实体并触发游戏结束
	PlayerDead
)

// String 返回状态名（日志用）
func (s PlayerState) String() string {
	switch s {
	case PlayerNormal:
		return "Normal"
	case PlayerInvincible:
		return "Invincible"
	case PlayerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// PlayerComponent 玩家专属数据
type PlayerComponent struct {
	State           PlayerState
	InvincibleTimer TimerComponent // 无敌窗口（一次性）
	DeathTimer      TimerComponent // 死亡动画时长（一次性）
	TurnRate        float64        // 每 tick 最大转向角（弧度）
}
