package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/entities"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/input"
	"github.com/gonewx/keepmoving/pkg/systems"
)

// maxEventRounds 一个 tick 内事件处理的最大轮数
// 副作用可能产生后续事件（进入商店立即发出 ShopDone），轮数上限防止死循环
const maxEventRounds = 16

// SessionConfig 会话配置
type SessionConfig struct {
	// Gameplay 玩法数值，为 nil 时使用默认值
	Gameplay *config.GameplayConfig
	// Seed 随机数种子（刷怪点、地砖）
	Seed uint64
	// Audio 音频协作者，可为 nil
	Audio game.AudioSink
}

// TransitionListener 状态转换回调（日志、前端界面切换）
type TransitionListener func(from, to game.RunState, effects []game.Effect)

// Session 单 tick 调度器
//
// 持有状态树、实体管理器和全部系统。前端每帧调用一次 Tick，
// 然后通过 Snapshot 读取需要绘制的内容。
//
// 每个 tick 的顺序：
//  1. 输入边沿检测，产生 Start / Pause / Resume 事件并立即处理
//  2. 未暂停且处于 Game.Wave 时推进 WaveController；Running 时依次运行
//     玩家计时 → 转向 → 敌人 → 炮塔 → 子弹 → 存活上限 → 移动 → 边界 →
//     战斗 → 死亡判定 → 镜头
//  3. 处理本 tick 产生的事件，执行进入/离开副作用
//  4. 清理标记删除的实体
type Session struct {
	state  game.RunState
	events game.EventQueue

	entityManager *ecs.EntityManager
	gameplay      *config.GameplayConfig
	arena         *systems.Arena
	rng           *rand.Rand
	audio         game.AudioSink
	controller    *game.GameController
	tiles         [][]int

	waveSystem       *systems.WaveSystem
	playerSystem     *systems.PlayerSystem
	enemySystem      *systems.EnemySystem
	defenderSystem   *systems.DefenderSystem
	projectileSystem *systems.ProjectileSystem
	lifetimeSystem   *systems.LifetimeSystem
	movementSystem   *systems.MovementSystem
	combatSystem     *systems.CombatSystem
	animationSystem  *systems.AnimationSystem
	cameraSystem     *systems.CameraSystem

	prevIntents input.IntentSet
	listener    TransitionListener
	ticks       uint64
}

// NewSession 创建会话，初始状态为 Loading
func NewSession(cfg SessionConfig) (*Session, error) {
	gameplay := cfg.Gameplay
	if gameplay == nil {
		gameplay = config.DefaultGameplayConfig()
	}
	formula, err := config.NewWaveFormula(gameplay.Wave)
	if err != nil {
		return nil, fmt.Errorf("failed to build wave formula: %w", err)
	}

	audio := cfg.Audio
	if audio == nil {
		audio = game.NopAudioSink{}
	}

	em := ecs.NewEntityManager()
	arena := systems.NewArena()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	s := &Session{
		state:         game.InitialRunState(),
		entityManager: em,
		gameplay:      gameplay,
		arena:         arena,
		rng:           rng,
		audio:         audio,
		controller:    game.NewGameController(),
	}
	s.tiles = arena.GenerateTiles(rng)

	s.waveSystem = systems.NewWaveSystem(em, gameplay, formula, arena, rng, &s.events, audio)
	s.playerSystem = systems.NewPlayerSystem(em, arena, &s.events)
	s.enemySystem = systems.NewEnemySystem(em)
	s.defenderSystem = systems.NewDefenderSystem(em, gameplay, audio)
	s.projectileSystem = systems.NewProjectileSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.movementSystem = systems.NewMovementSystem(em)
	s.combatSystem = systems.NewCombatSystem(em, audio)
	s.animationSystem = systems.NewAnimationSystem(em)
	s.cameraSystem = systems.NewCameraSystem(em)

	log.Printf("[Session] Created (seed=%d)", cfg.Seed)
	return s, nil
}

// SetTransitionListener 设置状态转换回调
func (s *Session) SetTransitionListener(l TransitionListener) {
	s.listener = l
}

// AssetsLoaded 前端确认资源就绪，离开 Loading
func (s *Session) AssetsLoaded() {
	s.dispatch(game.EventAssetsLoaded)
}

// State 当前状态
func (s *Session) State() game.RunState {
	return s.state
}

// Level 当前波次等级（从 0 开始）
func (s *Session) Level() int {
	return s.controller.Level()
}

// RunID 当前一局的标识，菜单中为上一局的标识
func (s *Session) RunID() string {
	return s.controller.RunID()
}

// Tiles 竞技场地砖编号 tiles[y][x]
func (s *Session) Tiles() [][]int {
	return s.tiles
}

// Arena 竞技场几何
func (s *Session) Arena() *systems.Arena {
	return s.arena
}

// EntityManager 实体管理器（只读用途：渲染、调试）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Tick 推进一个逻辑帧
// dt 被限制在 [0, Simulation.MaxFrameDelta] 内，卡顿后的长帧只推进上限时长
func (s *Session) Tick(dt float64, intents input.IntentSet) {
	s.ticks++
	if !(dt > 0) {
		dt = 0
	}
	if maxDt := s.gameplay.Simulation.MaxFrameDelta; maxDt > 0 && dt > maxDt {
		dt = maxDt
	}

	s.handleInput(intents)

	if s.state.Simulating() && s.state.InWave() {
		s.simulate(dt, intents)
	}

	s.processEvents()
	s.entityManager.RemoveMarkedEntities()
}

// handleInput 把新按下的意图翻译为状态事件
func (s *Session) handleInput(intents input.IntentSet) {
	pressed := intents.JustPressed(s.prevIntents)
	s.prevIntents = intents

	switch {
	case s.state.App == game.AppMenu:
		if pressed.Has(input.Confirm) {
			s.dispatch(game.EventStart)
		}
	case s.state.Paused():
		if pressed.Has(input.CloseMenu) || pressed.Has(input.Cancel) {
			s.dispatch(game.EventResume)
		}
	case s.state.InGame():
		if pressed.Has(input.OpenMenu) {
			s.dispatch(game.EventPause)
		}
	}
}

func (s *Session) simulate(dt float64, intents input.IntentSet) {
	s.waveSystem.Advance(dt, s.state.Wave)

	if s.state.Wave == game.WaveRunning {
		s.playerSystem.UpdateTimers(dt)
		s.playerSystem.Steer(intents)
		s.enemySystem.Update(dt)
		s.defenderSystem.Update(dt)
		s.projectileSystem.Update(dt)
		s.lifetimeSystem.Update(dt)
		s.movementSystem.Update(dt)
		s.playerSystem.CheckBoundary()
		s.combatSystem.Update(dt)
		s.enemySystem.ResolveDeaths()
		s.playerSystem.ResolveDeath()
		s.cameraSystem.Update(dt)
	}

	s.animationSystem.Update(dt)
}

// processEvents 按顺序处理排队的事件
func (s *Session) processEvents() {
	for round := 0; round < maxEventRounds && s.events.Len() > 0; round++ {
		for _, e := range s.events.Drain() {
			s.dispatch(e)
		}
	}
	if pending := s.events.Drain(); len(pending) > 0 {
		log.Printf("[Session] Dropped %d events after %d rounds", len(pending), maxEventRounds)
	}
}

// dispatch 应用一个事件并执行副作用
func (s *Session) dispatch(e game.Event) {
	from := s.state
	next, effects := game.Next(from, e)
	if effects == nil {
		log.Printf("[RunState] Ignored %s in %s", e, from)
		return
	}

	s.state = next
	log.Printf("[RunState] %s --%s--> %s %v", from, e, next, effects)

	for _, ef := range effects {
		s.runEffect(ef)
	}
	if s.listener != nil {
		s.listener(from, next, effects)
	}
}

func (s *Session) runEffect(ef game.Effect) {
	if ef.Kind == game.EffectExit {
		s.exit(ef.Node)
		return
	}
	s.enter(ef.Node)
}

func (s *Session) enter(node game.StateNode) {
	switch node {
	case game.NodeGame:
		s.controller.StartRun()
	case game.NodeShop:
		s.controller.AdvanceLevel()
		s.events.Push(game.EventShopDone)
	case game.NodeWave:
		s.enterWave()
	case game.NodePreparation:
		s.waveSystem.Enter(game.WavePreparation)
	case game.NodeRunning:
		s.waveSystem.Enter(game.WaveRunning)
		s.spawnDefender()
	case game.NodeComplete:
		s.waveSystem.Enter(game.WaveComplete)
	case game.NodeGameOver:
		s.waveSystem.Enter(game.WaveGameOver)
	case game.NodePaused:
		s.audio.Play(game.CueMusicPause)
	}
}

func (s *Session) exit(node game.StateNode) {
	switch node {
	case game.NodeGame:
		s.controller.EndRun()
	case game.NodeWave:
		systems.DespawnScope(s.entityManager, components.ScopeWave)
		s.waveSystem.End()
		s.cameraSystem.Reset()
		s.audio.Play(game.CueMusicStop)
	case game.NodeRunning:
		systems.DespawnScope(s.entityManager, components.ScopeCombat)
	case game.NodePaused:
		s.audio.Play(game.CueMusicResume)
	}
}

func (s *Session) enterWave() {
	s.waveSystem.Begin(s.controller.Level())

	s.cameraSystem.Reset()
	player, err := entities.NewPlayer(s.entityManager, s.gameplay)
	if err != nil {
		log.Printf("[Session] Failed to spawn player: %v", err)
	} else {
		s.cameraSystem.Follow(player)
	}
	s.audio.Play(game.CueMusicStart)
}

func (s *Session) spawnDefender() {
	player, ok := s.playerSystem.Player()
	if !ok {
		log.Printf("[Session] No player to attach a defender to")
		return
	}
	if _, err := entities.NewDefender(s.entityManager, s.gameplay, player); err != nil {
		log.Printf("[Session] Failed to spawn defender: %v", err)
	}
}
