package systems

import (
	"log"
	"math/rand/v2"

	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/entities"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// WaveSystem 持有当前波次的 WaveController，负责把计时结果落地：
// 生成敌人、发出过渡事件、播放倒计时提示
//
// 没有波次（controller 为 nil）时 Advance 什么都不做。
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameplay      *config.GameplayConfig
	formula       *config.WaveFormula
	arena         *Arena
	rng           *rand.Rand
	events        *game.EventQueue
	audio         game.AudioSink

	controller *WaveController
}

// NewWaveSystem 创建波次系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - formula: 已编译的刷怪公式，为 nil 时使用基础数值
//   - arena: 竞技场（刷怪点采样）
//   - rng: 会话随机数源
//   - events: 事件队列
//   - audio: 音频协作者，可为 nil
func NewWaveSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, formula *config.WaveFormula,
	arena *Arena, rng *rand.Rand, events *game.EventQueue, audio game.AudioSink) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		gameplay:      cfg,
		formula:       formula,
		arena:         arena,
		rng:           rng,
		events:        events,
		audio:         audioOrNop(audio),
	}
}

// Begin 进入 Game.Wave：为指定等级创建 WaveController
func (s *WaveSystem) Begin(level int) *WaveController {
	s.controller = NewWaveController(level, s.gameplay.Wave, s.formula)
	log.Printf("[WaveSystem] Wave %d begins: amount=%d interval=%.2fs duration=%.1fs",
		level+1, s.controller.SpawnAmount, s.controller.SpawnInterval(), s.gameplay.Wave.Duration)
	return s.controller
}

// End 离开 Game.Wave：丢弃 WaveController
func (s *WaveSystem) End() {
	if s.controller != nil {
		log.Printf("[WaveSystem] Wave %d ended", s.controller.Level+1)
	}
	s.controller = nil
}

// Controller 当前波次，没有波次时为 nil
func (s *WaveSystem) Controller() *WaveController {
	return s.controller
}

// Enter 进入波次子状态
func (s *WaveSystem) Enter(state game.WaveState) {
	if s.controller == nil {
		return
	}
	s.controller.Enter(state)
}

// Advance 推进当前波次
func (s *WaveSystem) Advance(dt float64, state game.WaveState) {
	if s.controller == nil {
		return
	}

	tick := s.controller.Advance(dt, state)
	if tick.CountdownStepped {
		s.audio.Play(game.CueCountdown)
	}
	if tick.Spawns > 0 {
		s.spawnEnemies(tick.Spawns)
	}
	if tick.Fired {
		s.events.Push(tick.Event)
	}
}

// spawnEnemies 在竞技场内随机位置生成敌人，尽量避开玩家周围
func (s *WaveSystem) spawnEnemies(count int) {
	var avoid *utils.Vec2
	if id, _, ok := findPlayer(s.entityManager); ok {
		if p, ok := entityPosition(s.entityManager, id); ok {
			avoid = &p
		}
	}

	for i := 0; i < count; i++ {
		p := s.arena.SpawnPosition(s.rng, avoid, s.gameplay.Wave.SafeSpawnRadius)
		if _, err := entities.NewEnemy(s.entityManager, s.gameplay, p.X, p.Y); err != nil {
			log.Printf("[WaveSystem] Failed to spawn enemy: %v", err)
			return
		}
	}
	log.Printf("[WaveSystem] Spawned %d enemies", count)
}
