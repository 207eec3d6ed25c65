package systems

import (
	"log"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
)

// DespawnScope 标记删除作用域内的所有实体，返回数量
// 离开状态时无条件调用，没有渐出过程
func DespawnScope(em *ecs.EntityManager, scope components.Scope) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ScopeComponent](em) {
		sc, _ := ecs.GetComponent[*components.ScopeComponent](em, id)
		if sc.Scope != scope || !em.IsAlive(id) {
			continue
		}
		em.DestroyEntity(id)
		count++
	}
	if count > 0 {
		log.Printf("[Scope] Despawned %d %s-scoped entities", count, scope)
	}
	return count
}

// CountScope 作用域内存活实体数量
func CountScope(em *ecs.EntityManager, scope components.Scope) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ScopeComponent](em) {
		sc, _ := ecs.GetComponent[*components.ScopeComponent](em, id)
		if sc.Scope == scope && em.IsAlive(id) {
			count++
		}
	}
	return count
}
