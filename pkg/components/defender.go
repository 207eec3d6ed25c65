package components

import "github.com/gonewx/keepmoving/pkg/ecs"

// DefenderComponent 跟随玩家的自动炮塔
type DefenderComponent struct {
	Owner       ecs.EntityID   // 跟随的玩家实体
	ActionTimer TimerComponent // 开火节奏（重复）
}
