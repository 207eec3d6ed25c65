package entities

import (
	"fmt"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// NewProjectile 创建追踪子弹
// 子弹从炮塔位置出发，锁定 target（弱引用），存活上限由 LifetimeComponent 兜底
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - x, y: 发射点世界坐标
//   - target: 锁定的敌人实体
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
//   - error: 参数非法时返回错误
func NewProjectile(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64, target ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	// 初始方向指向目标当前位置，目标不存在时朝 +Y
	direction := utils.Vec2Up
	if targetPos, ok := ecs.GetComponent[*components.PositionComponent](em, target); ok {
		if d := (utils.Vec2{X: targetPos.X - x, Y: targetPos.Y - y}).Normalize(); !d.IsZero() {
			direction = d
		}
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.MovementComponent{
		Direction: direction,
		Speed:     cfg.Projectile.Speed,
	})
	em.AddComponent(id, &components.CollisionComponent{Radius: cfg.Projectile.Radius})
	em.AddComponent(id, &components.ProjectileComponent{
		Target: target,
		Damage: cfg.Projectile.Damage,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		Timer: components.NewTimer("projectile_lifetime", cfg.Projectile.Lifetime, components.TimerOnce),
	})
	em.AddComponent(id, &components.ScopeComponent{Scope: components.ScopeCombat})
	em.AddComponent(id, newAnimation(config.ProjectileFrames, cfg.Animation.FrameTime))
	em.AddComponent(id, &components.VisualComponent{Kind: components.VisualProjectile})

	return id, nil
}
