package systems

import (
	"math"
	"testing"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/utils"
)

// TestEnemyPursuit Active 敌人的方向 = normalize(P - E)
func TestEnemyPursuit(t *testing.T) {
	tests := []struct {
		name   string
		player utils.Vec2
		enemy  utils.Vec2
	}{
		{"正右方", utils.Vec2{X: 100}, utils.Vec2{}},
		{"左下方", utils.Vec2{X: -30, Y: -40}, utils.Vec2{}},
		{"任意位置", utils.Vec2{X: 12.5, Y: 3}, utils.Vec2{X: -200, Y: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.spawnPlayerAt(tt.player.X, tt.player.Y)
			enemy := w.spawnActiveEnemyAt(tt.enemy.X, tt.enemy.Y)

			NewEnemySystem(w.em).Update(0.016)

			want := tt.player.Sub(tt.enemy).Normalize()
			got := w.movement(enemy).Direction
			if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
				t.Errorf("direction = %v, want %v", got, want)
			}
		})
	}
}

// TestEnemyWithoutPlayerStops 没有玩家时敌人原地不动
func TestEnemyWithoutPlayerStops(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnActiveEnemyAt(50, 50)
	w.movement(enemy).Direction = utils.Vec2{X: 1}

	NewEnemySystem(w.em).Update(0.016)

	if !w.movement(enemy).Direction.IsZero() {
		t.Errorf("direction should be zero without a player, got %v", w.movement(enemy).Direction)
	}
}

// TestEnemySpawningGrace 出生保护期内不移动，结束后进入 Active
func TestEnemySpawningGrace(t *testing.T) {
	w := newTestWorld()
	w.spawnPlayerAt(0, 0)
	id := w.spawnActiveEnemyAt(100, 0)
	w.enemy(id).State = components.EnemySpawning

	system := NewEnemySystem(w.em)
	system.Update(0.5)
	if w.enemy(id).State != components.EnemySpawning {
		t.Fatal("enemy left spawning too early")
	}
	if !w.movement(id).Direction.IsZero() {
		t.Error("spawning enemy must not move")
	}

	system.Update(0.5)
	if w.enemy(id).State != components.EnemyActive {
		t.Fatalf("state = %v, want Active", w.enemy(id).State)
	}
	anim := w.animation(id)
	if anim.Frames[0] != config.EnemyActiveFrames[0] || anim.Index != 0 {
		t.Errorf("active frames not applied: %+v", anim)
	}
}

// TestEnemyDeathLifecycle 生命值归零 -> Dead -> 死亡计时结束后删除
func TestEnemyDeathLifecycle(t *testing.T) {
	w := newTestWorld()
	w.spawnPlayerAt(0, 0)
	id := w.spawnActiveEnemyAt(100, 0)
	system := NewEnemySystem(w.em)

	w.health(id).CurrentHealth = 0
	if died := system.ResolveDeaths(); died != 1 {
		t.Fatalf("ResolveDeaths = %d, want 1", died)
	}
	if w.enemy(id).State != components.EnemyDead {
		t.Fatal("enemy should be Dead")
	}
	if isHittableEnemy(w.em, id) {
		t.Error("dead enemy must not be hittable")
	}
	if system.ResolveDeaths() != 0 {
		t.Error("already dead enemy must not die twice")
	}

	system.Update(0.5)
	if !w.movement(id).Direction.IsZero() {
		t.Error("dead enemy must not pursue")
	}
	if !w.em.IsAlive(id) {
		t.Fatal("enemy removed before death timer finished")
	}
	system.Update(0.5)
	if w.em.IsAlive(id) {
		t.Error("enemy should be removed after death timer")
	}
}
