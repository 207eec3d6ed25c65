package components

import "github.com/gonewx/keepmoving/pkg/ecs"

// ProjectileComponent 子弹数据
//
// Target 是对敌人实体的弱引用：不延长敌人的生命，
// 每次使用前都必须通过 EntityManager 校验是否仍然存活
type ProjectileComponent struct {
	Target ecs.EntityID // 锁定的敌人，InvalidEntity 表示无目标
	Damage int          // 命中伤害
}
