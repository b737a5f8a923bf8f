package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID int

const (
	// SceneMainMenu 主菜单（装饰小球 + 最高分）
	SceneMainMenu SceneID = iota
	// SceneGameplay 游戏中
	SceneGameplay
	// SceneGameOver 结束界面
	SceneGameOver
)

// String 返回场景名称
func (id SceneID) String() string {
	switch id {
	case SceneMainMenu:
		return "MainMenu"
	case SceneGameplay:
		return "Gameplay"
	case SceneGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// SceneFactory 场景工厂函数类型
// 用于按ID创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换请求在当前帧 Update 结束后才生效，
// 因此场景可以在自己的 Update 中安全地请求切换。
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
	pending      *SceneID
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回当前场景ID
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Load 立即创建并切换到指定场景
func (sm *SceneManager) Load(id SceneID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(id)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}
	sm.SwitchTo(newScene)
	sm.currentID = id
	log.Printf("[SceneManager] 切换到场景: %s", id)
}

// Request 请求在本帧结束后切换场景
func (sm *SceneManager) Request(id SceneID) {
	sm.pending = &id
}

// Update updates the currently active scene, then applies any pending switch.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	if sm.pending != nil {
		id := *sm.pending
		sm.pending = nil
		sm.Load(id)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
