package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rayleigh/pkg/sky"
	"github.com/gonewx/rayleigh/pkg/utils"
)

// 底部面板布局常量（逻辑像素）
const (
	panelPadding    = 20.0
	titleFontSize   = 16.0
	readoutFontSize = 13.0
	hintFontSize    = 11.0
	sliderHeight    = 8.0
	buttonWidth     = 96.0
	buttonHeight    = 28.0
	maxProseLines   = 4
)

// 面板配色
var (
	panelColor    = color.RGBA{R: 18, G: 21, B: 28, A: 255}
	titleColor    = color.RGBA{R: 235, G: 238, B: 244, A: 255}
	readoutColor  = color.RGBA{R: 255, G: 214, B: 130, A: 255}
	hintColor     = color.RGBA{R: 140, G: 148, B: 160, A: 255}
	proseColor    = color.RGBA{R: 200, G: 208, B: 220, A: 255}
	dividerColor  = color.RGBA{R: 52, G: 58, B: 70, A: 255}
)

// layoutWidgets 根据上一次 Draw 观测到的画面尺寸布局控件
//
// 控件区域使用设备像素，布局计算在逻辑单位完成后乘 scale。
func (s *SkyScene) layoutWidgets() {
	w := float64(s.screenW) / s.scale
	h := float64(s.screenH) / s.scale
	panelTop := h - s.theme.Layout.BottomPanelH
	colW := w/2 - 2*panelPadding

	// 按钮字体随当前像素密度加载（字形源有缓存，这里只是构造字面）
	if font, err := utils.LoadFont(readoutFontSize * s.scale); err == nil {
		s.explainButton.Font = font
		s.raysButton.Font = font
	}

	s.slider.X = panelPadding * s.scale
	s.slider.Y = (panelTop + 92) * s.scale
	s.slider.W = colW * s.scale
	s.slider.H = sliderHeight * s.scale

	s.explainButton.X = panelPadding * s.scale
	s.explainButton.Y = (panelTop + 124) * s.scale
	s.explainButton.W = buttonWidth * s.scale
	s.explainButton.H = buttonHeight * s.scale

	s.raysButton.X = (panelPadding + buttonWidth + 12) * s.scale
	s.raysButton.Y = (panelTop + 124) * s.scale
	s.raysButton.W = buttonWidth * s.scale
	s.raysButton.H = buttonHeight * s.scale
}

// Draw 绘制整个场景
//
// 天空帧走脏标记缓存（见 SkyScene 的说明）；底部面板每帧直接绘制。
func (s *SkyScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	bounds := screen.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}

	s.scale = ebiten.Monitor().DeviceScaleFactor()
	if s.scale <= 0 {
		s.scale = 1
	}
	s.screenW = bounds.Dx()
	s.screenH = bounds.Dy()

	s.drawSkyFrame(screen)
	s.drawPanel(screen)
}

// drawSkyFrame 绘制（必要时重建）缓存的天空帧
func (s *SkyScene) drawSkyFrame(screen *ebiten.Image) {
	skyPxH := s.screenH - int(s.theme.Layout.BottomPanelH*s.scale)
	if skyPxH <= 0 {
		// 窗口太矮，天空区域退化为零，跳过本次绘制
		return
	}

	// 尺寸变化时重建离屏帧并标记重绘
	if s.skyFrame == nil ||
		s.skyFrame.Bounds().Dx() != s.screenW ||
		s.skyFrame.Bounds().Dy() != skyPxH {
		if s.skyFrame != nil {
			s.skyFrame.Deallocate()
		}
		s.skyFrame = ebiten.NewImage(s.screenW, skyPxH)
		s.dirty = true
	}

	// 合并重绘：无论本帧之前发生了多少次触发，这里只栅格化一次，
	// 并且读取的是绘制时刻的最新角度。
	if s.dirty {
		s.renderer.Frame(s.skyFrame, s.angle, s.scale, s.settings.Settings().ShowRays)
		s.dirty = false
	}

	screen.DrawImage(s.skyFrame, nil)
}

// drawPanel 绘制底部控制面板
func (s *SkyScene) drawPanel(screen *ebiten.Image) {
	w := float64(s.screenW) / s.scale
	h := float64(s.screenH) / s.scale
	panelTop := h - s.theme.Layout.BottomPanelH
	if panelTop < 0 {
		panelTop = 0
	}

	vector.DrawFilledRect(screen,
		0, float32(panelTop*s.scale),
		float32(w*s.scale), float32((h-panelTop)*s.scale),
		panelColor, true)
	vector.StrokeLine(screen,
		0, float32(panelTop*s.scale),
		float32(w*s.scale), float32(panelTop*s.scale),
		float32(1*s.scale), dividerColor, true)

	s.drawReadouts(screen, panelTop)
	s.slider.Draw(screen)
	s.explainButton.Draw(screen)
	s.raysButton.Draw(screen)
	s.drawExplanation(screen, panelTop, w)

	// 右半边：散射强度柱状图
	chartX := w/2 + panelPadding/2
	chartY := panelTop + 10
	chartW := w/2 - 1.5*panelPadding
	chartH := h - chartY - 10
	s.chart.Draw(screen, chartX, chartY, chartW, chartH, s.scale)
}

// drawReadouts 绘制标题与当前角度的读数
func (s *SkyScene) drawReadouts(screen *ebiten.Image, panelTop float64) {
	s.drawText(screen, "Rayleigh Scattering Sky Simulator", panelPadding, panelTop+14, titleFontSize, titleColor, true)

	readout := fmt.Sprintf("Phase: %s   Angle: %.1f°   Path length: %.2f×",
		sky.PhaseForAngle(s.angle), s.angle, sky.PathLengthFactor(s.angle))
	s.drawText(screen, readout, panelPadding, panelTop+42, readoutFontSize, readoutColor, false)

	s.drawText(screen, "Drag the slider or press ←/→ to move the sun. R toggles rays.",
		panelPadding, panelTop+64, hintFontSize, hintColor, false)
}

// drawExplanation 绘制解说文字（换行，最多 maxProseLines 行）
func (s *SkyScene) drawExplanation(screen *ebiten.Image, panelTop, w float64) {
	if s.explainBusy {
		s.drawText(screen, "Generating explanation...", panelPadding, panelTop+162, hintFontSize, hintColor, false)
		return
	}
	if s.explanation == "" {
		return
	}

	font, err := utils.LoadFont(hintFontSize * s.scale)
	if err != nil {
		return
	}
	colW := (w/2 - 2*panelPadding) * s.scale
	lines := utils.WrapText(s.explanation, font, colW)
	if len(lines) > maxProseLines {
		lines = lines[:maxProseLines]
	}
	for i, line := range lines {
		y := panelTop + 162 + float64(i)*(hintFontSize+4)
		s.drawText(screen, line, panelPadding, y, hintFontSize, proseColor, false)
	}
}

// drawText 在逻辑坐标处绘制一行文字
func (s *SkyScene) drawText(screen *ebiten.Image, str string, x, y, size float64, clr color.RGBA, bold bool) {
	var font *text.GoTextFace
	var err error
	if bold {
		font, err = utils.LoadBoldFont(size * s.scale)
	} else {
		font, err = utils.LoadFont(size * s.scale)
	}
	if err != nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*s.scale, y*s.scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, font, op)
}
