package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/rayleigh/internal/logger"
)

// SceneManager 管理当前活动的场景
//
// 同一时刻只有一个场景的 Update/Draw 会被调用。
// 模拟器目前只有天空场景一个场景，但切换机制保留，
// 方便以后加入帮助/关于等独立画面。
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始无活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	logger.Sugar.Debugw("scene switched", "scene", scene)
	sm.currentScene = scene
}

// CurrentScene 返回当前活动场景，可能为 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景；无活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景；无活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
