package systems

import (
	"log"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/input"
)

// PlayerSystem 玩家转向、生命状态和边界判定
//
// 每 tick 的调用顺序由调度器决定：
//   - UpdateTimers: 无敌窗口与死亡计时（死亡计时结束时删除玩家并发出 PlayerDied）
//   - Steer: 按输入转向
//   - CheckBoundary / ResolveDeath: 在移动与战斗之后判定死亡
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	arena         *Arena
	events        *game.EventQueue
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, arena *Arena, events *game.EventQueue) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		arena:         arena,
		events:        events,
	}
}

// Player 当前玩家实体
func (s *PlayerSystem) Player() (ecs.EntityID, bool) {
	id, _, ok := findPlayer(s.entityManager)
	return id, ok
}

// Steer 按方向意图转向
// 期望方向为各方向键之和的单位向量；朝向每 tick 最多转 TurnRate 弧度，不会瞬间对齐
func (s *PlayerSystem) Steer(intents input.IntentSet) {
	id, player, ok := findPlayer(s.entityManager)
	if !ok || player.State == components.PlayerDead {
		return
	}
	move, ok := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
	if !ok {
		return
	}

	desired := intents.MoveVector().Normalize()
	if desired.IsZero() {
		return
	}
	move.Direction = move.Direction.RotateTowards(desired, player.TurnRate)
}

// UpdateTimers 推进无敌和死亡计时器
func (s *PlayerSystem) UpdateTimers(dt float64) {
	id, player, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	switch player.State {
	case components.PlayerInvincible:
		if TickTimer(&player.InvincibleTimer, dt) > 0 {
			player.State = components.PlayerNormal
		}
	case components.PlayerDead:
		if TickTimer(&player.DeathTimer, dt) > 0 {
			log.Printf("[PlayerSystem] Player %d death animation finished", id)
			s.entityManager.DestroyEntity(id)
			s.events.Push(game.EventPlayerDied)
		}
	}
}

// CheckBoundary 玩家的碰撞圆离开可活动区域时直接死亡，与生命值无关
func (s *PlayerSystem) CheckBoundary() {
	id, player, ok := findPlayer(s.entityManager)
	if !ok || player.State == components.PlayerDead {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}

	if !s.arena.Contains(boundingCircle(pos, col)) {
		log.Printf("[PlayerSystem] Player %d left the arena at (%.1f, %.1f)", id, pos.X, pos.Y)
		killPlayer(player)
	}
}

// ResolveDeath 生命值归零的玩家在同一 tick 进入 Dead
func (s *PlayerSystem) ResolveDeath() {
	id, player, ok := findPlayer(s.entityManager)
	if !ok || player.State == components.PlayerDead {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || !IsDepleted(health) {
		return
	}
	log.Printf("[PlayerSystem] Player %d health depleted", id)
	killPlayer(player)
}

func killPlayer(player *components.PlayerComponent) {
	player.State = components.PlayerDead
	ResetTimer(&player.DeathTimer)
}
