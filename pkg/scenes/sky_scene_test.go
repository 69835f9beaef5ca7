package scenes

import (
	"os"
	"testing"

	"github.com/gonewx/rayleigh/pkg/config"
	"github.com/gonewx/rayleigh/pkg/explain"
	"github.com/gonewx/rayleigh/pkg/game"
)

// newTestScene 创建使用默认主题和降级设置的测试场景
func newTestScene() *SkyScene {
	settings := game.NewSettingsManager(nil)
	theme := config.DefaultTheme()
	client := explain.NewClient(explain.Config{})
	return NewSkyScene(settings, theme, client)
}

// TestNewSkyScene 场景从正午开始且首帧需要重绘
func TestNewSkyScene(t *testing.T) {
	s := newTestScene()
	if s.Angle() != 90 {
		t.Errorf("初始角度 = %v, 期望 90", s.Angle())
	}
	if !s.dirty {
		t.Error("新场景应标记首帧重绘")
	}
	if s.slider.Value != 90 {
		t.Errorf("滑块初始值 = %v, 期望 90", s.slider.Value)
	}

	// 实现 Scene 接口
	var _ game.Scene = s
}

// TestSetAngleMarksDirty 角度变化置位脏标记，角度不变不置位
func TestSetAngleMarksDirty(t *testing.T) {
	s := newTestScene()
	s.dirty = false

	s.setAngle(45)
	if !s.dirty {
		t.Error("角度变化应标记重绘")
	}
	if s.Angle() != 45 || s.slider.Value != 45 {
		t.Errorf("角度与滑块应同步更新: angle=%v slider=%v", s.Angle(), s.slider.Value)
	}

	s.dirty = false
	s.setAngle(45)
	if s.dirty {
		t.Error("角度不变不应标记重绘")
	}
}

// TestSliderDrivesAngle 滑块回调驱动权威角度
func TestSliderDrivesAngle(t *testing.T) {
	s := newTestScene()
	s.slider.OnChange(120.5)
	if s.Angle() != 120.5 {
		t.Errorf("滑块回调后角度 = %v, 期望 120.5", s.Angle())
	}
}

// TestPollExplanationApplied 结果角度接近当前角度时被采纳
func TestPollExplanationApplied(t *testing.T) {
	s := newTestScene()
	s.explainBusy = true
	s.explainButton.Disabled = true

	s.explainCh <- explainResult{text: "blue sky prose", angle: 90.0}
	s.pollExplanation()

	if s.explainBusy {
		t.Error("结果回收后应清除在途标记")
	}
	if s.explainButton.Disabled {
		t.Error("结果回收后按钮应恢复可用")
	}
	if s.explanation != "blue sky prose" {
		t.Errorf("解说文字 = %q, 期望采纳结果", s.explanation)
	}
}

// TestPollExplanationStaleDiscarded 滑块已移开时丢弃过期结果
func TestPollExplanationStaleDiscarded(t *testing.T) {
	s := newTestScene()
	s.explainBusy = true
	s.setAngle(150) // 请求发出后滑块被移动

	s.explainCh <- explainResult{text: "stale prose", angle: 90.0}
	s.pollExplanation()

	if s.explanation != "" {
		t.Errorf("过期结果应被丢弃, 实际保留了 %q", s.explanation)
	}
	if s.explainBusy {
		t.Error("即使丢弃结果也应清除在途标记")
	}
}

// TestPollExplanationWithinTolerance 容差内的小幅移动不丢弃结果
func TestPollExplanationWithinTolerance(t *testing.T) {
	s := newTestScene()
	s.explainBusy = true
	s.setAngle(90.25) // 恰好在容差上

	s.explainCh <- explainResult{text: "still valid", angle: 90.0}
	s.pollExplanation()

	if s.explanation != "still valid" {
		t.Errorf("容差内的结果应被采纳, 实际 %q", s.explanation)
	}
}

// TestRequestExplanationSingleFlight 在途期间重复请求被忽略
func TestRequestExplanationSingleFlight(t *testing.T) {
	originalKey := os.Getenv("OPENAI_API_KEY")
	os.Setenv("OPENAI_API_KEY", "")
	defer os.Setenv("OPENAI_API_KEY", originalKey)

	s := newTestScene()

	s.requestExplanation()
	if !s.explainBusy || !s.explainButton.Disabled {
		t.Fatal("请求后应进入在途状态且按钮禁用")
	}

	// 在途期间再次请求不应改变状态（也不应发出第二个请求）
	s.requestExplanation()
	if !s.explainBusy {
		t.Error("重复请求不应清除在途标记")
	}

	// 回收第一个请求的结果（降级客户端立即返回离线文字）
	res := <-s.explainCh
	if res.text == "" {
		t.Error("降级客户端应返回回退文字")
	}
}

// TestLayoutWidgetsAssignsButtonFont 布局后按钮持有字体，文字可以绘制
func TestLayoutWidgetsAssignsButtonFont(t *testing.T) {
	s := newTestScene()
	s.screenW, s.screenH = 960, 640
	s.scale = 1

	s.layoutWidgets()

	if s.explainButton.Font == nil {
		t.Error("布局后解说按钮应持有字体")
	}
	if s.raysButton.Font == nil {
		t.Error("布局后光线按钮应持有字体")
	}
	if s.explainButton.W <= 0 || s.explainButton.H <= 0 {
		t.Errorf("按钮区域应为正: w=%v h=%v", s.explainButton.W, s.explainButton.H)
	}
}

// TestToggleRays 光线开关翻转设置并更新按钮文字
func TestToggleRays(t *testing.T) {
	s := newTestScene()
	s.dirty = false

	if !s.settings.Settings().ShowRays {
		t.Fatal("默认应显示光线")
	}
	s.toggleRays()
	if s.settings.Settings().ShowRays {
		t.Error("切换后应关闭光线")
	}
	if s.raysButton.Label != "Rays: Off" {
		t.Errorf("按钮文字 = %q, 期望 Rays: Off", s.raysButton.Label)
	}
	if !s.dirty {
		t.Error("光线开关变化应标记重绘")
	}
}
