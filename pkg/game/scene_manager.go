package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 每个顶层状态（AppState）对应一个场景，状态切换时由 SwitchToState 选择场景。
type SceneManager struct {
	currentScene Scene
	currentState AppState
	scenes       map[AppState]Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or SwitchToState to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentState: -1,
		scenes:       make(map[AppState]Scene),
	}
}

// Register 为顶层状态注册场景
func (sm *SceneManager) Register(state AppState, scene Scene) {
	sm.scenes[state] = scene
}

// SwitchToState 切换到状态对应的场景
// 返回 false 表示该状态没有注册场景，当前场景保持不变
func (sm *SceneManager) SwitchToState(state AppState) bool {
	if state == sm.currentState && sm.currentScene != nil {
		return true
	}
	scene, ok := sm.scenes[state]
	if !ok {
		log.Printf("[SceneManager] 错误: 状态 %d 没有注册场景", state)
		return false
	}
	sm.currentScene = scene
	sm.currentState = state
	log.Printf("[SceneManager] 切换场景: 状态 %d", state)
	return true
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentState = -1
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
