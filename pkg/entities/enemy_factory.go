package entities

import (
	"fmt"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// NewEnemy 创建敌人实体
// 敌人以 Spawning 状态出生：不移动，出生保护期结束后才开始追击玩家
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - x, y: 出生点世界坐标
//
// 返回:
//   - ecs.EntityID: 敌人实体ID
//   - error: 参数非法时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.MovementComponent{
		Direction: utils.Vec2Zero,
		Speed:     cfg.Enemy.Speed,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Enemy.MaxHealth,
		MaxHealth:     cfg.Enemy.MaxHealth,
	})
	em.AddComponent(id, &components.CollisionComponent{Radius: cfg.Enemy.Radius})
	em.AddComponent(id, &components.EnemyComponent{
		State:      components.EnemySpawning,
		SpawnTimer: components.NewTimer("enemy_spawn", cfg.Enemy.SpawnTime, components.TimerOnce),
		DeathTimer: components.NewTimer("enemy_death", cfg.Enemy.DeathTime, components.TimerOnce),
		Damage:     cfg.Enemy.Damage,
	})
	em.AddComponent(id, &components.ScopeComponent{Scope: components.ScopeCombat})
	em.AddComponent(id, newAnimation(config.EnemySpawningFrames, cfg.Animation.FrameTime))
	em.AddComponent(id, &components.VisualComponent{Kind: components.VisualEnemy})

	return id, nil
}
