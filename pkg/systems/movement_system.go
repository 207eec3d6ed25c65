package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// MovementSystem 位置积分：position += direction * speed * dt
// 死亡的玩家和非 Active 的敌人不移动
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 积分所有可移动实体
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.MovementComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) || !s.canMove(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		move, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)

		step := move.Direction.Scale(move.Speed * deltaTime)
		pos.X += step.X
		pos.Y += step.Y
	}
}

func (s *MovementSystem) canMove(id ecs.EntityID) bool {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
		return player.State != components.PlayerDead
	}
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
		return enemy.State == components.EnemyActive
	}
	return true
}
