package scenes

import (
	"reflect"
	"testing"

	"github.com/gonewx/keepmoving/pkg/components"
	"github.com/gonewx/keepmoving/pkg/config"
	"github.com/gonewx/keepmoving/pkg/ecs"
	"github.com/gonewx/keepmoving/pkg/game"
	"github.com/gonewx/keepmoving/pkg/input"
	"github.com/gonewx/keepmoving/pkg/systems"
	"github.com/gonewx/keepmoving/pkg/utils"
)

type recordingSink struct {
	cues []game.Cue
}

func (r *recordingSink) Play(c game.Cue) { r.cues = append(r.cues, c) }

func (r *recordingSink) count(c game.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, seed uint64) (*Session, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	s, err := NewSession(SessionConfig{Seed: seed, Audio: sink})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, sink
}

var noInput = input.NewIntentSet()

// startRun Loading -> Menu -> Game.Wave.Preparation
func startRun(t *testing.T, s *Session) {
	t.Helper()
	s.AssetsLoaded()
	s.Tick(1.0/60, input.NewIntentSet(input.Confirm))
	if !s.State().Is(game.WavePreparation) {
		t.Fatalf("state = %s, want Game.Wave.Preparation", s.State())
	}
}

// finishPreparation 走完 3-2-1-Go（每步 1 秒，按单帧上限 0.25 秒推进）
func finishPreparation(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 16; i++ {
		s.Tick(0.25, noInput)
	}
	if !s.State().Is(game.WaveRunning) {
		t.Fatalf("state = %s, want Game.Wave.Running", s.State())
	}
}

// pinPlayer 把玩家固定在中心并回满血，使流程测试不受战斗结果影响
func pinPlayer(s *Session) {
	id, ok := s.playerSystem.Player()
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	pos.X, pos.Y = 0, 0
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	health.CurrentHealth = health.MaxHealth
}

func countKind(snap Snapshot, kind components.VisualKind) int {
	n := 0
	for _, sp := range snap.Sprites {
		if sp.Kind == kind {
			n++
		}
	}
	return n
}

func TestSessionLoadingAndMenu(t *testing.T) {
	s, _ := newTestSession(t, 1)

	if s.State().App != game.AppLoading || s.Snapshot().HUD.Title != LoadingText {
		t.Fatalf("session should start in Loading, got %s", s.State())
	}

	// Loading 中确认键无效
	s.Tick(0.1, input.NewIntentSet(input.Confirm))
	if s.State().App != game.AppLoading {
		t.Fatal("confirm must not leave Loading")
	}

	s.AssetsLoaded()
	if s.State().App != game.AppMenu {
		t.Fatalf("state = %s, want Menu", s.State())
	}
	if hud := s.Snapshot().HUD; hud.Title != TitleText {
		t.Errorf("menu title %q", hud.Title)
	}

	// 上一 tick 已按住的确认键不算新按下
	s.Tick(0.1, input.NewIntentSet(input.Confirm))
	if s.State().App != game.AppMenu {
		t.Fatal("held confirm must not start a run")
	}
	s.Tick(0.1, noInput)
	s.Tick(0.1, input.NewIntentSet(input.Confirm))
	if !s.State().InWave() {
		t.Errorf("state = %s, want Game.Wave", s.State())
	}
}

// TestSessionEnterWave 进入 Game.Wave：玩家、WaveController、波次音乐
func TestSessionEnterWave(t *testing.T) {
	s, sink := newTestSession(t, 1)
	startRun(t, s)

	snap := s.Snapshot()
	if countKind(snap, components.VisualPlayer) != 1 {
		t.Errorf("expected exactly one player")
	}
	if s.waveSystem.Controller() == nil {
		t.Fatal("wave controller should exist")
	}
	if snap.HUD.Wave != "Wave 1" || snap.HUD.Countdown != "3" || snap.HUD.Health != "HP: 10/10" {
		t.Errorf("unexpected HUD: %+v", snap.HUD)
	}
	if sink.count(game.CueMusicStart) != 1 {
		t.Errorf("music start played %d times", sink.count(game.CueMusicStart))
	}
	if s.RunID() == "" {
		t.Error("run id should be assigned")
	}

	finishPreparation(t, s)
	snap = s.Snapshot()
	if countKind(snap, components.VisualDefender) != 1 {
		t.Errorf("entering Running should attach one defender")
	}
	if countKind(snap, components.VisualPlayer) != 1 {
		t.Errorf("player should persist into Running")
	}
}

// TestSessionWaveCycle Running -> Complete -> Shop -> 下一波 Preparation
func TestSessionWaveCycle(t *testing.T) {
	s, sink := newTestSession(t, 1)
	startRun(t, s)
	finishPreparation(t, s)

	sawEnemy := false
	for i := 0; i < 60 && s.State().Is(game.WaveRunning); i++ {
		s.Tick(0.25, noInput)
		pinPlayer(s)
		if countKind(s.Snapshot(), components.VisualEnemy) > 0 {
			sawEnemy = true
		}
	}
	if !s.State().Is(game.WaveComplete) {
		t.Fatalf("state = %s, want Game.Wave.Complete", s.State())
	}
	if !sawEnemy {
		t.Error("enemies should have spawned during the wave")
	}

	// 离开 Running 后战斗作用域清空，玩家保留
	if n := systems.CountScope(s.entityManager, components.ScopeCombat); n != 0 {
		t.Errorf("%d combat entities left after Running", n)
	}
	snap := s.Snapshot()
	if countKind(snap, components.VisualPlayer) != 1 || snap.HUD.Banner != FinishedText {
		t.Errorf("unexpected Complete snapshot: %+v", snap.HUD)
	}

	for i := 0; i < 12; i++ {
		s.Tick(0.25, noInput)
	}
	if !s.State().Is(game.WavePreparation) {
		t.Fatalf("state = %s, want next wave Preparation", s.State())
	}
	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
	snap = s.Snapshot()
	if snap.HUD.Wave != "Wave 2" {
		t.Errorf("HUD wave %q, want Wave 2", snap.HUD.Wave)
	}
	if countKind(snap, components.VisualPlayer) != 1 {
		t.Errorf("exactly one player expected in the next wave")
	}
	if sink.count(game.CueMusicStop) != 1 || sink.count(game.CueMusicStart) != 2 {
		t.Errorf("music cues: %v", sink.cues)
	}
}

// TestSessionPlayerDeath 生命值归零 -> 同 tick Dead -> 1 秒后 GameOver（只发生一次）-> 3 秒后回到菜单
func TestSessionPlayerDeath(t *testing.T) {
	s, _ := newTestSession(t, 1)
	gameOvers := 0
	s.SetTransitionListener(func(from, to game.RunState, effects []game.Effect) {
		for _, ef := range effects {
			if ef == game.Enter(game.NodeGameOver) {
				gameOvers++
			}
		}
	})
	startRun(t, s)
	finishPreparation(t, s)

	id, _ := s.playerSystem.Player()
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	health.CurrentHealth = 0

	s.Tick(0.25, noInput)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if player.State != components.PlayerDead {
		t.Fatalf("player state = %v, want Dead", player.State)
	}

	for i := 0; i < 3; i++ {
		s.Tick(0.25, noInput)
		if !s.State().Is(game.WaveRunning) {
			t.Fatalf("left Running too early at tick %d", i)
		}
	}
	s.Tick(0.25, noInput)
	if !s.State().Is(game.WaveGameOver) {
		t.Fatalf("state = %s, want GameOver", s.State())
	}

	snap := s.Snapshot()
	if snap.HUD.Banner != GameOverText || snap.HUD.Health != "HP: 0/10" {
		t.Errorf("unexpected GameOver HUD: %+v", snap.HUD)
	}
	if countKind(snap, components.VisualPlayer) != 0 {
		t.Error("player should be removed after its death timer")
	}

	for i := 0; i < 12; i++ {
		s.Tick(0.25, noInput)
	}
	if s.State().App != game.AppMenu {
		t.Fatalf("state = %s, want Menu", s.State())
	}
	if gameOvers != 1 {
		t.Errorf("GameOver entered %d times, want 1", gameOvers)
	}
	// 只剩镜头实体
	if n := s.entityManager.Count(); n != 1 {
		t.Errorf("%d entities left after returning to menu, want 1", n)
	}
}

// TestSessionPause 暂停期间模拟时间不前进
func TestSessionPause(t *testing.T) {
	s, sink := newTestSession(t, 1)
	startRun(t, s)
	finishPreparation(t, s)
	s.Tick(0.25, noInput)

	wave := s.waveSystem.Controller()
	remaining := wave.TimeRemaining()
	id, _ := s.playerSystem.Player()
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	x, y := pos.X, pos.Y

	s.Tick(0.25, input.NewIntentSet(input.OpenMenu))
	if !s.State().Paused() {
		t.Fatalf("state = %s, want paused", s.State())
	}
	for i := 0; i < 10; i++ {
		s.Tick(1.0, noInput)
	}
	if wave.TimeRemaining() != remaining || pos.X != x || pos.Y != y {
		t.Error("simulation advanced while paused")
	}
	if s.Snapshot().HUD.Paused != PausedText {
		t.Error("HUD should show PAUSED")
	}

	s.Tick(0.25, input.NewIntentSet(input.Cancel))
	if s.State().Paused() {
		t.Fatal("cancel should resume")
	}
	if wave.TimeRemaining() != remaining-0.25 {
		t.Errorf("remaining = %v, want %v", wave.TimeRemaining(), remaining-0.25)
	}
	if sink.count(game.CueMusicPause) != 1 || sink.count(game.CueMusicResume) != 1 {
		t.Errorf("pause cues: %v", sink.cues)
	}
}

// TestSessionDeterministic 相同种子和输入得到相同的快照
func TestSessionDeterministic(t *testing.T) {
	run := func() (Snapshot, [][]int) {
		s, _ := newTestSession(t, 7)
		startRun(t, s)
		finishPreparation(t, s)
		for i := 0; i < 50; i++ {
			intents := noInput
			if i%10 < 5 {
				intents = input.NewIntentSet(input.MoveLeft)
			}
			s.Tick(0.2, intents)
			pinPlayer(s)
		}
		return s.Snapshot(), s.Tiles()
	}

	snapA, tilesA := run()
	snapB, tilesB := run()
	if !reflect.DeepEqual(snapA, snapB) {
		t.Error("snapshots differ for the same seed")
	}
	if !reflect.DeepEqual(tilesA, tilesB) {
		t.Error("tiles differ for the same seed")
	}
}

// TestSessionLongFrameIsCapped 卡顿后的超长帧只推进 MaxFrameDelta
func TestSessionLongFrameIsCapped(t *testing.T) {
	s, _ := newTestSession(t, 1)
	startRun(t, s)
	finishPreparation(t, s)

	wave := s.waveSystem.Controller()
	remaining := wave.TimeRemaining()
	id, _ := s.playerSystem.Player()

	s.Tick(8.0, noInput)

	if !s.State().Is(game.WaveRunning) {
		t.Fatalf("state = %s, want Game.Wave.Running", s.State())
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if player.State != components.PlayerNormal {
		t.Errorf("player state = %v, want Normal", player.State)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !s.Arena().Playable.ContainsPoint(utils.Vec2{X: pos.X, Y: pos.Y}) {
		t.Errorf("player left the arena: (%v, %v)", pos.X, pos.Y)
	}
	want := remaining - config.MaxFrameDelta
	if got := wave.TimeRemaining(); got != want {
		t.Errorf("remaining = %v, want %v", got, want)
	}
	if n := countKind(s.Snapshot(), components.VisualEnemy); n != 0 {
		t.Errorf("%d enemies spawned by a single long frame, want 0", n)
	}
}

// TestSessionHUDTimeRoundsDown 剩余时间按整秒向下取整
func TestSessionHUDTimeRoundsDown(t *testing.T) {
	s, _ := newTestSession(t, 1)
	startRun(t, s)
	finishPreparation(t, s)

	if got := s.Snapshot().HUD.Time; got != "Time: 15/15" {
		t.Errorf("HUD time at wave start = %q, want %q", got, "Time: 15/15")
	}
	s.Tick(0.25, noInput)
	if got := s.Snapshot().HUD.Time; got != "Time: 14/15" {
		t.Errorf("HUD time after 0.25s = %q, want %q", got, "Time: 14/15")
	}
}

// TestSessionDeathAtWaveEnd 死亡动画未结束时波次到时：波次照常完成，下一波换新玩家
func TestSessionDeathAtWaveEnd(t *testing.T) {
	s, _ := newTestSession(t, 1)
	gameOvers := 0
	s.SetTransitionListener(func(from, to game.RunState, effects []game.Effect) {
		for _, ef := range effects {
			if ef == game.Enter(game.NodeGameOver) {
				gameOvers++
			}
		}
	})
	startRun(t, s)
	finishPreparation(t, s)

	wave := s.waveSystem.Controller()
	for i := 0; i < 100 && wave.TimeRemaining() > 0.5; i++ {
		s.Tick(0.25, noInput)
		pinPlayer(s)
	}
	if !s.State().Is(game.WaveRunning) {
		t.Fatalf("state = %s, want Game.Wave.Running", s.State())
	}

	id, _ := s.playerSystem.Player()
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	health.CurrentHealth = 0
	s.Tick(0.25, noInput)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if player.State != components.PlayerDead {
		t.Fatalf("player state = %v, want Dead", player.State)
	}

	// 距死亡动画结束还有 0.75 秒，波次先结束
	s.Tick(0.25, noInput)
	if !s.State().Is(game.WaveComplete) {
		t.Fatalf("state = %s, want Game.Wave.Complete", s.State())
	}

	for i := 0; i < 12; i++ {
		s.Tick(0.25, noInput)
	}
	if !s.State().Is(game.WavePreparation) || s.Level() != 1 {
		t.Fatalf("state = %s level %d, want next wave Preparation", s.State(), s.Level())
	}
	if gameOvers != 0 {
		t.Errorf("GameOver entered %d times, want 0", gameOvers)
	}

	next, ok := s.playerSystem.Player()
	if !ok || next == id {
		t.Fatalf("next wave should have a fresh player, got %d (old %d)", next, id)
	}
	fresh, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, next)
	freshHealth, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, next)
	if fresh.State != components.PlayerNormal || freshHealth.CurrentHealth != freshHealth.MaxHealth {
		t.Errorf("fresh player state %v hp %d/%d", fresh.State, freshHealth.CurrentHealth, freshHealth.MaxHealth)
	}
}
