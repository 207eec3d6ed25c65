package systems

import (
	"math/rand/v2"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/entities"
	"github.com/gonewx/keepmoving/pkg/game"
)

// 以下辅助函数被多个测试文件共享

// recordingAudio 记录收到的音频提示
type recordingAudio struct {
	cues []game.Cue
}

func (r *recordingAudio) Play(cue game.Cue) {
	r.cues = append(r.cues, cue)
}

func (r *recordingAudio) count(cue game.Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// testWorld 测试用的最小世界
type testWorld struct {
	em     *ecs.EntityManager
	cfg    *config.GameplayConfig
	events *game.EventQueue
	audio  *recordingAudio
	arena  *Arena
	rng    *rand.Rand
}

func newTestWorld() *testWorld {
	return &testWorld{
		em:     ecs.NewEntityManager(),
		cfg:    config.DefaultGameplayConfig(),
		events: &game.EventQueue{},
		audio:  &recordingAudio{},
		arena:  NewArena(),
		rng:    rand.New(rand.NewPCG(1, 2)),
	}
}

// spawnPlayerAt 在指定位置创建玩家
func (w *testWorld) spawnPlayerAt(x, y float64) ecs.EntityID {
	id, err := entities.NewPlayer(w.em, w.cfg)
	if err != nil {
		panic(err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	return id
}

// spawnActiveEnemyAt 创建一个已经度过出生保护期的敌人
func (w *testWorld) spawnActiveEnemyAt(x, y float64) ecs.EntityID {
	id, err := entities.NewEnemy(w.em, w.cfg, x, y)
	if err != nil {
		panic(err)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	enemy.State = components.EnemyActive
	return id
}

func (w *testWorld) player(id ecs.EntityID) *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](w.em, id)
	return p
}

func (w *testWorld) enemy(id ecs.EntityID) *components.EnemyComponent {
	e, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	return e
}

func (w *testWorld) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h
}

func (w *testWorld) movement(id ecs.EntityID) *components.MovementComponent {
	m, _ := ecs.GetComponent[*components.MovementComponent](w.em, id)
	return m
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return p
}

func (w *testWorld) animation(id ecs.EntityID) *components.AnimationComponent {
	a, _ := ecs.GetComponent[*components.AnimationComponent](w.em, id)
	return a
}
