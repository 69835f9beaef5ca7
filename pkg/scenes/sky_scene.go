// Package scenes 组装模拟器的各个组成部分
package scenes

import (
	"context"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/rayleigh/internal/logger"
	"github.com/gonewx/rayleigh/pkg/config"
	"github.com/gonewx/rayleigh/pkg/explain"
	"github.com/gonewx/rayleigh/pkg/game"
	"github.com/gonewx/rayleigh/pkg/render"
	"github.com/gonewx/rayleigh/pkg/sky"
	"github.com/gonewx/rayleigh/pkg/ui"
	"github.com/gonewx/rayleigh/pkg/utils"
)

// staleExplanationTolerance 解说结果视为过期的角度偏移（度）
//
// 请求发出后滑块又被移动超过该值时，返回的文字描述的已经
// 不是当前画面，直接丢弃，避免文字和画面不匹配。
const staleExplanationTolerance = 0.25

// explainTimeout 单次解说请求的超时时间
const explainTimeout = 30 * time.Second

// explainResult 解说请求的结果
type explainResult struct {
	text  string  // 返回的文字（总是有内容，失败已映射为回退文字）
	angle float64 // 请求时的角度快照，用于过期判定
}

// SkyScene 天空模拟器主场景
//
// 场景持有唯一权威的太阳角度值，所有派生计算（颜色、几何、
// 读数、解说）都显式接收角度快照，不读取可变的外部状态。
//
// 天空画面采用"脏标记 + 离屏缓存"的合并重绘：角度变化和窗口
// 尺寸变化只置位 dirty，真正的栅格化在下一次 Draw 里按当时的
// 最新角度执行，每个绘制机会最多一帧。快速拖动滑块时中间角度
// 会被跳过，这是预期行为——只有最终状态有视觉意义。
type SkyScene struct {
	settings *game.SettingsManager
	theme    *config.ThemeConfig

	renderer *render.SkyRenderer
	chart    *render.IntensityChart
	client   *explain.Client

	// 权威状态
	angle float64

	// 离屏天空帧缓存
	skyFrame *ebiten.Image
	dirty    bool

	// 上一次 Draw 观测到的画面参数（供 Update 布局控件）
	screenW, screenH int
	scale            float64

	// 控件
	slider        *ui.Slider
	explainButton *ui.Button
	raysButton    *ui.Button

	// 解说状态
	explainBusy bool
	explainCh   chan explainResult
	explanation string
}

// NewSkyScene 创建主场景
func NewSkyScene(settings *game.SettingsManager, theme *config.ThemeConfig, client *explain.Client) *SkyScene {
	s := &SkyScene{
		settings:  settings,
		theme:     theme,
		renderer:  render.NewSkyRenderer(theme),
		chart:     render.NewIntensityChart(theme),
		client:    client,
		angle:     90, // 从正午开始
		dirty:     true,
		scale:     1,
		explainCh: make(chan explainResult, 1),
	}

	s.slider = &ui.Slider{
		Min: 0, Max: 180, Step: 0.5,
		Value: s.angle,
		OnChange: func(v float64) {
			s.setAngle(v)
		},
	}
	s.explainButton = &ui.Button{
		Label:   "Explain",
		OnClick: s.requestExplanation,
	}
	s.raysButton = &ui.Button{
		Label:   raysLabel(settings.Settings().ShowRays),
		OnClick: s.toggleRays,
	}
	return s
}

// Angle 返回当前太阳角度
func (s *SkyScene) Angle() float64 {
	return s.angle
}

// setAngle 更新权威角度并标记重绘
func (s *SkyScene) setAngle(v float64) {
	if v == s.angle {
		return
	}
	s.angle = v
	s.slider.Value = v
	s.dirty = true
}

// Update 处理输入并推进场景状态
func (s *SkyScene) Update(deltaTime float64) {
	in := utils.GetInputState()

	s.layoutWidgets()
	s.slider.Update(in)
	s.explainButton.Update(in)
	s.raysButton.Update(in)

	// 方向键微调角度（按住连续移动）
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.slider.Nudge(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.slider.Nudge(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.toggleRays()
	}

	s.pollExplanation()
}

// toggleRays 切换光线束开关并保存设置
func (s *SkyScene) toggleRays() {
	show := !s.settings.Settings().ShowRays
	s.settings.SetShowRays(show)
	if err := s.settings.Save(); err != nil {
		logger.Sugar.Warnw("failed to save settings", "error", err)
	}
	s.raysButton.Label = raysLabel(show)
	s.dirty = true
	logger.Sugar.Debugw("rays toggled", "show", show)
}

// raysLabel 返回光线开关按钮的文字
func raysLabel(show bool) string {
	if show {
		return "Rays: On"
	}
	return "Rays: Off"
}

// requestExplanation 发起一次解说请求
//
// 同一时刻只允许一个在途请求；请求期间按钮置为禁用。
// 请求携带发起时的角度/路径长度快照，结果在 Update 里回收。
func (s *SkyScene) requestExplanation() {
	if s.explainBusy {
		return
	}
	s.explainBusy = true
	s.explainButton.Disabled = true

	angleSnapshot := s.angle
	pathSnapshot := sky.PathLengthFactor(angleSnapshot)
	logger.Sugar.Infow("explanation requested", "angle", angleSnapshot, "pathLength", pathSnapshot)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		text := s.client.Explain(ctx, angleSnapshot, pathSnapshot)
		s.explainCh <- explainResult{text: text, angle: angleSnapshot}
	}()
}

// pollExplanation 非阻塞地回收解说结果
//
// 结果到达时如果滑块已经移开（超过过期容差），丢弃这段文字。
func (s *SkyScene) pollExplanation() {
	select {
	case res := <-s.explainCh:
		s.explainBusy = false
		s.explainButton.Disabled = false
		if math.Abs(res.angle-s.angle) > staleExplanationTolerance {
			logger.Sugar.Infow("explanation discarded as stale",
				"requestAngle", res.angle, "currentAngle", s.angle)
			return
		}
		s.explanation = res.text
	default:
	}
}
