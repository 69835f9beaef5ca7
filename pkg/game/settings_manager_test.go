package game

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建使用临时目录的 gdata Manager
// 环境不支持时返回 nil，测试走降级路径
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	appName := fmt.Sprintf("rayleigh_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	return manager
}

// TestDefaultSettings 测试默认设置值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Fullscreen {
		t.Error("默认不应全屏")
	}
	if !s.ShowRays {
		t.Error("默认应显示光线束")
	}
	if s.ExplainModel == "" {
		t.Error("默认模型不应为空")
	}
}

// TestSettingsManagerDegradedMode gdataManager 为 nil 时的降级模式
func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)

	if *sm.Settings() != *DefaultSettings() {
		t.Errorf("降级模式应使用默认设置: %+v", sm.Settings())
	}

	sm.SetShowRays(false)
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 不应报错: %v", err)
	}
	if sm.Settings().ShowRays {
		t.Error("内存设置应已更新")
	}
}

// TestSettingsManagerSaveLoad 保存后重新加载应得到相同设置
func TestSettingsManagerSaveLoad(t *testing.T) {
	manager := createTestGdataManager(t, "saveload")
	if manager == nil {
		t.Skip("gdata 在当前环境不可用")
	}

	sm := NewSettingsManager(manager)
	sm.SetFullscreen(true)
	sm.SetShowRays(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	// 用同一个 manager 新建实例，应加载到保存的值
	sm2 := NewSettingsManager(manager)
	if !sm2.Settings().Fullscreen {
		t.Error("重新加载后 Fullscreen 应为 true")
	}
	if sm2.Settings().ShowRays {
		t.Error("重新加载后 ShowRays 应为 false")
	}
	if sm2.Settings().ExplainModel != DefaultSettings().ExplainModel {
		t.Errorf("ExplainModel = %q, 期望默认值", sm2.Settings().ExplainModel)
	}
}

// TestSceneManager 场景管理器的基本切换行为
func TestSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.CurrentScene() != nil {
		t.Error("初始应无活动场景")
	}

	// 无场景时 Update/Draw 不应 panic
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}
