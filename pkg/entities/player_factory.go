package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// NewPlayer 创建玩家实体
// 玩家出生在竞技场中心，初始朝向 +Y，属于 Wave 作用域
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败时返回 0
//   - error: 参数非法时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(id, &components.MovementComponent{
		Direction: utils.Vec2Up,
		Speed:     cfg.Player.Speed,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Player.MaxHealth,
		MaxHealth:     cfg.Player.MaxHealth,
	})
	em.AddComponent(id, &components.CollisionComponent{Radius: cfg.Player.Radius})
	em.AddComponent(id, &components.PlayerComponent{
		State:           components.PlayerNormal,
		InvincibleTimer: components.NewTimer("player_invincible", cfg.Player.InvincibleTime, components.TimerOnce),
		DeathTimer:      components.NewTimer("player_death", cfg.Player.DeathTime, components.TimerOnce),
		TurnRate:        cfg.Player.TurnRate,
	})
	em.AddComponent(id, &components.ScopeComponent{Scope: components.ScopeWave})
	em.AddComponent(id, newAnimation(config.PlayerFrames, cfg.Animation.FrameTime))
	em.AddComponent(id, &components.VisualComponent{Kind: components.VisualPlayer})

	log.Printf("[PlayerFactory] 创建玩家 %d: HP=%d", id, cfg.Player.MaxHealth)
	return id, nil
}

// newAnimation 创建从第一帧开始循环的动画组件
func newAnimation(frames []int, frameTime float64) *components.AnimationComponent {
	seq := make([]int, len(frames))
	copy(seq, frames)
	return &components.AnimationComponent{
		Frames:     seq,
		FrameTimer: components.NewTimer("animation", frameTime, components.TimerRepeating),
	}
}
