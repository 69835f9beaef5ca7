package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/rayleigh/internal/logger"
)

// DisplaySettings 全局显示设置
//
// 只保存用户偏好，不保存会话状态：当前太阳角度不会被持久化，
// 每次启动都从正午开始。
type DisplaySettings struct {
	Fullscreen   bool   `yaml:"fullscreen"`   // 启动时是否全屏
	ShowRays     bool   `yaml:"showRays"`     // 是否绘制光线束
	ExplainModel string `yaml:"explainModel"` // 生成解说文字使用的模型
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen:   false,
		ShowRays:     true,
		ExplainModel: "gpt-4o-mini",
	}
}

// SettingsManager 设置管理器
//
// 通过 gdata 做跨平台持久化。gdataManager 为 nil 时进入降级模式：
// 设置只保留在内存中，Save 静默成功。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *DisplaySettings
}

// gdata 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 加载失败不是致命错误，回落到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		logger.Sugar.Warnw("failed to load settings, using defaults", "error", err)
	}
	return sm
}

// Load 从 gdata 加载设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.ExplainModel == "" {
		loaded.ExplainModel = DefaultSettings().ExplainModel
	}

	sm.settings = &loaded
	logger.Sugar.Debugw("settings loaded", "settings", loaded)
	return nil
}

// Save 保存设置到 gdata；降级模式下直接返回 nil
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
	logger.Sugar.Debugw("settings saved")
	return nil
}

// Settings 返回当前设置实例
func (sm *SettingsManager) Settings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏偏好（仅改内存，需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowRays 设置光线束开关（仅改内存，需调用 Save 持久化）
func (sm *SettingsManager) SetShowRays(enabled bool) {
	sm.settings.ShowRays = enabled
}
