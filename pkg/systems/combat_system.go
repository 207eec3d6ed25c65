package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/game"
)

// CombatSystem 碰撞伤害结算
//
// 子弹：按ID升序，每枚子弹只命中第一个相交的可命中敌人，造成伤害后删除自己。
// 接触：处于 Normal 的玩家与第一个相交的可命中敌人结算一次伤害，随后进入无敌窗口。
// 死亡判定交给 EnemySystem.ResolveDeaths 和 PlayerSystem.ResolveDeath。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	audio         game.AudioSink
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(em *ecs.EntityManager, audio game.AudioSink) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		audio:         audioOrNop(audio),
	}
}

// Update 结算本 tick 的子弹命中与接触伤害
func (s *CombatSystem) Update(deltaTime float64) {
	enemies := s.hittableEnemies()
	s.resolveProjectiles(enemies)
	// 子弹可能已经打掉了敌人的生命值，接触判定重新筛选
	s.resolvePlayerContact(s.hittableEnemies())
}

type enemyHitbox struct {
	id     ecs.EntityID
	circle BoundingCircle
}

func (s *CombatSystem) hittableEnemies() []enemyHitbox {
	var out []enemyHitbox
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		if !isHittableEnemy(s.entityManager, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		out = append(out, enemyHitbox{id: id, circle: boundingCircle(pos, col)})
	}
	return out
}

func (s *CombatSystem) resolveProjectiles(enemies []enemyHitbox) {
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		circle := boundingCircle(pos, col)

		for _, enemy := range enemies {
			// 同一 tick 内前面的子弹可能已经打空了这个敌人
			if !isHittableEnemy(s.entityManager, enemy.id) || !circle.Intersects(enemy.circle) {
				continue
			}
			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemy.id)
			ApplyDamage(health, proj.Damage)
			s.entityManager.DestroyEntity(id)
			s.audio.Play(game.CueHit)
			break
		}
	}
}

func (s *CombatSystem) resolvePlayerContact(enemies []enemyHitbox) {
	id, player, ok := findPlayer(s.entityManager)
	if !ok || player.State != components.PlayerNormal {
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
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return
	}
	circle := boundingCircle(pos, col)

	for _, enemy := range enemies {
		if !circle.Intersects(enemy.circle) {
			continue
		}
		comp, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemy.id)
		ApplyDamage(health, comp.Damage)
		player.State = components.PlayerInvincible
		ResetTimer(&player.InvincibleTimer)
		s.audio.Play(game.CueHurt)
		break
	}
}
