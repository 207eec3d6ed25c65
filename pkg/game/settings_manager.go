package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好
// 只保存音频与显示偏好，对局进度从不落盘
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 桌面端启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() Settings {
	return Settings{
		MusicVolume:  0.5,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// SettingsManager 设置管理器
// gdataManager 为 nil 时进入降级模式：设置只存在于内存中
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     Settings
}

// OpenSettingsManager 打开应用的 gdata 存储并加载设置
// 存储不可用时返回降级模式的管理器，同时返回打开失败的原因
func OpenSettingsManager(appName string) (*SettingsManager, error) {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsManager(nil), fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewSettingsManager(gm), nil
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败不是致命错误，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// 未保存过设置时保留默认值
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: music=%v(%.2f) sound=%v(%.2f)",
		loaded.MusicEnabled, loaded.MusicVolume, loaded.SoundEnabled, loaded.SoundVolume)
	return nil
}

// Save 保存设置到 gdata，降级模式下什么都不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Settings 返回当前设置的副本
func (sm *SettingsManager) Settings() Settings {
	return sm.settings
}

// Update 修改内存中的设置，音量被限制在 0.0 ~ 1.0
// 需调用 Save() 持久化
func (sm *SettingsManager) Update(fn func(s *Settings)) {
	fn(&sm.settings)
	sm.settings.normalize()
}

// CueVolume 播放提示时应使用的音量，对应开关关闭时为 0
func (sm *SettingsManager) CueVolume(cue Cue) float64 {
	if sm == nil {
		return DefaultSettings().volumeFor(cue)
	}
	return sm.settings.volumeFor(cue)
}

func (s Settings) volumeFor(cue Cue) float64 {
	if cue.IsMusic() {
		if !s.MusicEnabled {
			return 0
		}
		return s.MusicVolume
	}
	if !s.SoundEnabled {
		return 0
	}
	return s.SoundVolume
}

func (s *Settings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
