package systems

import (
	"math"
	"testing"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/input"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// TestPlayerSteerIsRateLimited 转向每 tick 不超过 TurnRate
func TestPlayerSteerIsRateLimited(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayerAt(0, 0)
	system := NewPlayerSystem(w.em, w.arena, w.events)

	system.Steer(input.NewIntentSet(input.MoveRight))
	dir := w.movement(id).Direction

	turned := math.Abs(utils.Vec2Up.AngleTo(dir))
	if math.Abs(turned-w.cfg.Player.TurnRate) > 1e-9 {
		t.Errorf("turned %.4f rad, want %.4f", turned, w.cfg.Player.TurnRate)
	}
	if dir.X <= 0 {
		t.Errorf("should turn toward +X, got %v", dir)
	}

	// 足够多的 tick 后对齐目标方向
	for i := 0; i < 100; i++ {
		system.Steer(input.NewIntentSet(input.MoveRight))
	}
	dir = w.movement(id).Direction
	if math.Abs(dir.X-1) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
		t.Errorf("direction should converge to +X, got %v", dir)
	}
}

func TestPlayerSteerIgnoresEmptyAndDead(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayerAt(0, 0)
	system := NewPlayerSystem(w.em, w.arena, w.events)

	// 相反方向抵消
	system.Steer(input.NewIntentSet(input.MoveLeft, input.MoveRight))
	if w.movement(id).Direction != utils.Vec2Up {
		t.Errorf("opposite keys should not turn, got %v", w.movement(id).Direction)
	}

	w.player(id).State = components.PlayerDead
	system.Steer(input.NewIntentSet(input.MoveRight))
	if w.movement(id).Direction != utils.Vec2Up {
		t.Errorf("dead player should not turn, got %v", w.movement(id).Direction)
	}
}

// TestPlayerBoundaryKill 碰撞圆离开可活动区域即死亡，与生命值无关
func TestPlayerBoundaryKill(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		wantDead bool
	}{
		{"中心", 0, 0, false},
		{"贴边", 365, 0, false},
		{"越过右边", 370, 0, true},
		{"越过上边", 0, 178, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := w.spawnPlayerAt(tt.x, tt.y)
			NewPlayerSystem(w.em, w.arena, w.events).CheckBoundary()

			dead := w.player(id).State == components.PlayerDead
			if dead != tt.wantDead {
				t.Errorf("dead = %v, want %v", dead, tt.wantDead)
			}
			if w.health(id).CurrentHealth != w.cfg.Player.MaxHealth {
				t.Error("boundary kill must not touch health")
			}
		})
	}
}

// TestPlayerDeathEmitsGameOverOnce 生命值归零同一 tick 进入 Dead，
// 1 秒后发出一次 PlayerDied，之后不再重复
func TestPlayerDeathEmitsGameOverOnce(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayerAt(0, 0)
	system := NewPlayerSystem(w.em, w.arena, w.events)

	ApplyDamage(w.health(id), 100)
	system.ResolveDeath()
	if w.player(id).State != components.PlayerDead {
		t.Fatal("player should be Dead in the same tick")
	}

	died := 0
	for i := 0; i < 12; i++ {
		system.UpdateTimers(0.25)
		for _, e := range w.events.Drain() {
			if e == game.EventPlayerDied {
				died++
				if i != 3 {
					t.Errorf("PlayerDied emitted on tick %d, want 3", i)
				}
			}
		}
	}
	if died != 1 {
		t.Errorf("PlayerDied emitted %d times, want 1", died)
	}
	if w.em.IsAlive(id) {
		t.Error("player should be removed after death timer")
	}
	if _, ok := system.Player(); ok {
		t.Error("Player() should report no player")
	}
}

// TestPlayerInvincibilityExpires 无敌窗口结束回到 Normal
func TestPlayerInvincibilityExpires(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayerAt(0, 0)
	system := NewPlayerSystem(w.em, w.arena, w.events)

	w.player(id).State = components.PlayerInvincible
	system.UpdateTimers(0.5)
	if w.player(id).State != components.PlayerInvincible {
		t.Fatal("invincibility ended too early")
	}
	system.UpdateTimers(0.5)
	if w.player(id).State != components.PlayerNormal {
		t.Errorf("state = %v, want Normal", w.player(id).State)
	}
}

// TestPlayerSystemWithoutPlayer 玩家不存在时所有操作都是空操作
func TestPlayerSystemWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	system := NewPlayerSystem(w.em, w.arena, w.events)

	system.Steer(input.NewIntentSet(input.MoveUp))
	system.UpdateTimers(1)
	system.CheckBoundary()
	system.ResolveDeath()

	if w.events.Len() != 0 {
		t.Errorf("no events expected, got %d", w.events.Len())
	}
}
