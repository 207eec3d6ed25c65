package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// findPlayer 返回唯一的存活玩家
// 玩家在生成/清理的过渡期可能不存在，调用方应跳过本 tick 的相关逻辑
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](em) {
		if !em.IsAlive(id) {
			continue
		}
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		return id, player, true
	}
	return ecs.InvalidEntity, nil, false
}

// entityPosition 实体位置（向量形式）
func entityPosition(em *ecs.EntityManager, id ecs.EntityID) (utils.Vec2, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Vec2{}, false
	}
	return utils.Vec2{X: pos.X, Y: pos.Y}, true
}

// isHittableEnemy 敌人是否可以被锁定、被命中、伤害玩家
// 只有 Active 且生命值大于 0 的存活敌人才算
func isHittableEnemy(em *ecs.EntityManager, id ecs.EntityID) bool {
	if !em.IsAlive(id) {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok || enemy.State != components.EnemyActive {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	return ok && health.CurrentHealth > 0
}

// NearestEnemy 距离 from 最近的可锁定敌人
// 按距离平方严格小于比较，距离相同时保留ID较小的敌人
func NearestEnemy(em *ecs.EntityManager, from utils.Vec2) (ecs.EntityID, bool) {
	best := ecs.InvalidEntity
	bestDist := 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		if !isHittableEnemy(em, id) {
			continue
		}
		pos, _ := entityPosition(em, id)
		d := from.DistanceSquared(pos)
		if best == ecs.InvalidEntity || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != ecs.InvalidEntity
}

// audioOrNop 未注入音频时使用空实现
func audioOrNop(a game.AudioSink) game.AudioSink {
	if a == nil {
		return game.NopAudioSink{}
	}
	return a
}
