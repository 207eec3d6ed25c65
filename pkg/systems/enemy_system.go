package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// EnemySystem 敌人状态机与追击
//
// Spawning: 不移动，出生计时结束后进入 Active
// Active:   每 tick 方向 = normalize(玩家位置 - 敌人位置)，不做预判
// Dead:     停止移动，死亡计时结束后删除
type EnemySystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(em *ecs.EntityManager) *EnemySystem {
	return &EnemySystem{entityManager: em}
}

// Update 推进敌人计时器并计算追击方向
func (s *EnemySystem) Update(deltaTime float64) {
	var target *utils.Vec2
	if playerID, _, ok := findPlayer(s.entityManager); ok {
		if p, ok := entityPosition(s.entityManager, playerID); ok {
			target = &p
		}
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.MovementComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		move, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)

		switch enemy.State {
		case components.EnemySpawning:
			move.Direction = utils.Vec2Zero
			if TickTimer(&enemy.SpawnTimer, deltaTime) > 0 {
				enemy.State = components.EnemyActive
				s.setFrames(id, config.EnemyActiveFrames)
			}
		case components.EnemyDead:
			move.Direction = utils.Vec2Zero
			if TickTimer(&enemy.DeathTimer, deltaTime) > 0 {
				s.entityManager.DestroyEntity(id)
			}
			continue
		}

		if enemy.State != components.EnemyActive {
			continue
		}
		if target == nil {
			move.Direction = utils.Vec2Zero
			continue
		}
		pos, _ := entityPosition(s.entityManager, id)
		move.Direction = target.Sub(pos).Normalize()
	}
}

// ResolveDeaths 生命值归零的 Active 敌人进入 Dead
// 在战斗结算之后调用，使用同一份生命值快照判定
func (s *EnemySystem) ResolveDeaths() int {
	died := 0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if enemy.State != components.EnemyActive || !IsDepleted(health) {
			continue
		}

		enemy.State = components.EnemyDead
		ResetTimer(&enemy.DeathTimer)
		if move, ok := ecs.GetComponent[*components.MovementComponent](s.entityManager, id); ok {
			move.Direction = utils.Vec2Zero
		}
		s.setFrames(id, config.EnemyDeadFrames)
		died++
	}
	return died
}

func (s *EnemySystem) setFrames(id ecs.EntityID, frames []int) {
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		SetAnimationFrames(anim, frames)
	}
}
