package systems

import (
	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// ProjectileSystem 子弹追踪
//
// 目标是弱引用，每 tick 校验：目标不再是可锁定的敌人时子弹立即删除，
// 否则方向重新指向目标当前位置
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 更新所有子弹的方向
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.MovementComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)

		if !isHittableEnemy(s.entityManager, proj.Target) {
			s.entityManager.DestroyEntity(id)
			continue
		}

		targetPos, _ := entityPosition(s.entityManager, proj.Target)
		pos, _ := entityPosition(s.entityManager, id)
		if dir := targetPos.Sub(pos).Normalize(); !dir.IsZero() {
			move, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
			move.Direction = dir
		}
	}
}
