package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时目录中打开 gdata 存储
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	gm, err := gdata.Open(gdata.Config{AppName: "keepmoving_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gm
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MusicVolume != 0.5 || s.SoundVolume != 0.8 {
		t.Errorf("volumes = %v/%v, want 0.5/0.8", s.MusicVolume, s.SoundVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.Fullscreen {
		t.Error("Fullscreen should be off by default")
	}
}

// TestSettingsManagerNilGdata 测试降级模式
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.Settings() != DefaultSettings() {
		t.Errorf("degraded manager should use defaults, got %+v", sm.Settings())
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试保存后重新打开能读回设置
func TestSettingsLoadSave(t *testing.T) {
	gm := openTestGdata(t)

	sm := NewSettingsManager(gm)
	sm.Update(func(s *Settings) {
		s.MusicVolume = 0.25
		s.SoundEnabled = false
		s.Fullscreen = true
	})
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reopened := NewSettingsManager(gm)
	got := reopened.Settings()
	if got.MusicVolume != 0.25 || got.SoundEnabled || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}

// TestSettingsUpdateClamp 测试音量被限制在合法范围
func TestSettingsUpdateClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.3, 0.3},
		{"负数", -0.5, 0.0},
		{"超过上限", 1.7, 1.0},
		{"边界0", 0.0, 0.0},
		{"边界1", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.Update(func(s *Settings) {
				s.MusicVolume = tt.input
				s.SoundVolume = tt.input
			})
			got := sm.Settings()
			if got.MusicVolume != tt.want || got.SoundVolume != tt.want {
				t.Errorf("volumes = %v/%v, want %v", got.MusicVolume, got.SoundVolume, tt.want)
			}
		})
	}
}

// TestCueVolume 测试开关关闭时对应提示静音
func TestCueVolume(t *testing.T) {
	sm := NewSettingsManager(nil)

	if got := sm.CueVolume(CueMusicStart); got != 0.5 {
		t.Errorf("music volume = %v, want 0.5", got)
	}
	if got := sm.CueVolume(CueHit); got != 0.8 {
		t.Errorf("sound volume = %v, want 0.8", got)
	}

	sm.Update(func(s *Settings) { s.MusicEnabled = false })
	if got := sm.CueVolume(CueMusicStart); got != 0 {
		t.Errorf("disabled music volume = %v, want 0", got)
	}
	if got := sm.CueVolume(CueFire); got != 0.8 {
		t.Errorf("sound volume should be unaffected, got %v", got)
	}

	var nilManager *SettingsManager
	if got := nilManager.CueVolume(CueHurt); got != DefaultSettings().SoundVolume {
		t.Errorf("nil manager should use defaults, got %v", got)
	}
}
