package entities

import (
	"fmt"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// NewDefender 创建跟随玩家的炮塔
// 炮塔属于 Combat 作用域，波次结束时随敌人一起清理
func NewDefender(em *ecs.EntityManager, cfg *config.GameplayConfig, owner ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}
	ownerPos, ok := ecs.GetComponent[*components.PositionComponent](em, owner)
	if !ok || !em.IsAlive(owner) {
		return 0, fmt.Errorf("defender owner %d does not exist", owner)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: ownerPos.X, Y: ownerPos.Y})
	em.AddComponent(id, &components.DefenderComponent{
		Owner:       owner,
		ActionTimer: components.NewTimer("defender_fire", cfg.Defender.FireInterval, components.TimerRepeating),
	})
	em.AddComponent(id, &components.ScopeComponent{Scope: components.ScopeCombat})
	em.AddComponent(id, newAnimation(config.DefenderFrames, cfg.Animation.FrameTime))
	em.AddComponent(id, &components.VisualComponent{Kind: components.VisualDefender})

	return id, nil
}
