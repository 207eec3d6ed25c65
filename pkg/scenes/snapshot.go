package scenes

import (
	"fmt"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/systems"
)

// 界面文本
const (
	TitleText    = "Keep the Keep Moving!"
	LoadingText  = "Loading..."
	StartText    = "Press Enter to start"
	PausedText   = "PAUSED"
	FinishedText = "Finished!"
	GameOverText = "Game Over!"
)

// Sprite 一个可见实体
type Sprite struct {
	ID       ecs.EntityID
	Kind     components.VisualKind
	X, Y     float64 // 世界坐标，Y 轴向上
	Frame    int     // 精灵表帧索引，-1 表示没有动画
	Rotation float64 // 相对 +Y 的朝向（弧度），只有玩家和子弹使用
	Radius   float64 // 碰撞半径，没有碰撞体时为 0
}

// HUD 界面文本
// 空字符串表示当前状态不显示该项
type HUD struct {
	Title     string
	Prompt    string
	Wave      string
	Time      string
	Health    string
	Countdown string
	Banner    string
	Paused    string
}

// Snapshot 一帧的只读视图
// 渲染端只依赖快照，不直接访问实体管理器
type Snapshot struct {
	State   game.RunState
	Tick    uint64
	CameraX float64
	CameraY float64
	Sprites []Sprite
	HUD     HUD
}

// Snapshot 构建当前帧的视图
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Tick:    s.ticks,
		Sprites: s.sprites(),
		HUD:     s.hud(),
	}
	snap.CameraX, snap.CameraY = s.cameraSystem.Position()
	return snap
}

func (s *Session) sprites() []Sprite {
	em := s.entityManager
	ids := ecs.GetEntitiesWith2[*components.VisualComponent, *components.PositionComponent](em)
	out := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		if !em.IsAlive(id) {
			continue
		}
		visual, _ := ecs.GetComponent[*components.VisualComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		sp := Sprite{ID: id, Kind: visual.Kind, X: pos.X, Y: pos.Y, Frame: -1}
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			sp.Frame = systems.CurrentFrame(anim)
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			sp.Radius = col.Radius
		}
		if visual.Kind == components.VisualPlayer || visual.Kind == components.VisualProjectile {
			if move, ok := ecs.GetComponent[*components.MovementComponent](em, id); ok {
				sp.Rotation = move.Direction.Angle()
			}
		}
		out = append(out, sp)
	}
	return out
}

func (s *Session) hud() HUD {
	var h HUD
	switch s.state.App {
	case game.AppLoading:
		h.Title = LoadingText
		return h
	case game.AppMenu:
		h.Title = TitleText
		h.Prompt = StartText
		return h
	}

	if s.state.Paused() {
		h.Paused = PausedText
	}
	wave := s.waveSystem.Controller()
	if !s.state.InWave() || wave == nil {
		return h
	}

	h.Wave = fmt.Sprintf("Wave %d", wave.Level+1)
	total := s.gameplay.Wave.Duration
	h.Time = fmt.Sprintf("Time: %d/%d", int(wave.TimeRemaining()), int(total))
	h.Health = s.healthText()

	switch s.state.Wave {
	case game.WavePreparation:
		h.Countdown = wave.CountdownText()
	case game.WaveComplete:
		h.Banner = FinishedText
	case game.WaveGameOver:
		h.Banner = GameOverText
	}
	return h
}

// healthText 玩家已被移除（游戏结束过渡期间）时显示 0
func (s *Session) healthText() string {
	maxHP := s.gameplay.Player.MaxHealth
	id, ok := s.playerSystem.Player()
	if !ok {
		return fmt.Sprintf("HP: 0/%d", maxHP)
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return fmt.Sprintf("HP: 0/%d", maxHP)
	}
	return fmt.Sprintf("HP: %d/%d", health.CurrentHealth, health.MaxHealth)
}
