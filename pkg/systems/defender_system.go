package systems

import (
	"log"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/entities"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// DefenderSystem 炮塔跟随玩家并定时开火
//
// 每次开火计时器到时，选择距离最近的 Active 敌人并发射一枚追踪子弹；
// 没有可锁定的敌人时不发射，计时器照常重复
type DefenderSystem struct {
	entityManager *ecs.EntityManager
	gameplay      *config.GameplayConfig
	audio         game.AudioSink
}

// NewDefenderSystem 创建炮塔系统
func NewDefenderSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, audio game.AudioSink) *DefenderSystem {
	return &DefenderSystem{
		entityManager: em,
		gameplay:      cfg,
		audio:         audioOrNop(audio),
	}
}

// Update 跟随与开火
func (s *DefenderSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.DefenderComponent, *components.PositionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		defender, _ := ecs.GetComponent[*components.DefenderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 主人不在时本 tick 什么都不做
		ownerPos, ok := entityPosition(s.entityManager, defender.Owner)
		if !ok || !s.entityManager.IsAlive(defender.Owner) {
			continue
		}
		pos.X, pos.Y = ownerPos.X, ownerPos.Y

		shots := TickTimer(&defender.ActionTimer, deltaTime)
		for i := 0; i < shots; i++ {
			s.fire(id, pos)
		}
	}
}

func (s *DefenderSystem) fire(defenderID ecs.EntityID, pos *components.PositionComponent) {
	target, ok := NearestEnemy(s.entityManager, utils.Vec2{X: pos.X, Y: pos.Y})
	if !ok {
		return
	}
	if _, err := entities.NewProjectile(s.entityManager, s.gameplay, pos.X, pos.Y, target); err != nil {
		log.Printf("[DefenderSystem] Defender %d failed to fire: %v", defenderID, err)
		return
	}
	s.audio.Play(game.CueFire)
}
