package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rayleigh/pkg/config"
	"github.com/gonewx/rayleigh/pkg/sky"
	"github.com/gonewx/rayleigh/pkg/utils"
)

// 图表布局常量（逻辑像素）
const (
	chartPadding    = 14.0 // 绘图区内边距
	chartLabelBand  = 30.0 // 底部标签区高度
	chartValueGap   = 4.0  // 数值与柱顶的间距
	chartTitleSize  = 13.0
	chartLabelSize  = 11.0
	chartMaxValue   = 100.0 // 强度表按蓝光归一化为 100
	barGapFraction  = 0.45  // 柱间距占柱宽的比例
)

// BarRect 单根柱子的区域（逻辑像素）
type BarRect struct {
	X, Y, W, H float64
}

// IntensityChart 散射强度柱状图
//
// 频段表与太阳角度无关，在创建时读取一次 sky.Bands 并不再变化；
// 图表旁变化的只是场景里的角度/路径长度读数。
type IntensityChart struct {
	theme *config.ThemeConfig
	bands []sky.WavelengthBand
}

// NewIntensityChart 创建柱状图
func NewIntensityChart(theme *config.ThemeConfig) *IntensityChart {
	return &IntensityChart{
		theme: theme,
		bands: sky.Bands(),
	}
}

// Draw 在给定区域（逻辑坐标，乘 scale 后为设备像素）绘制图表
func (c *IntensityChart) Draw(dst *ebiten.Image, x, y, w, h, scale float64) {
	if dst == nil || w <= 0 || h <= 0 || scale <= 0 {
		return
	}

	// 背景
	vector.DrawFilledRect(dst, float32(x*scale), float32(y*scale), float32(w*scale), float32(h*scale),
		c.theme.Chart.Background.ToRGBA(), true)

	// 标题
	c.drawText(dst, "Rayleigh Scattering Intensity (1/λ⁴)", x+w/2, y+chartPadding, chartTitleSize, scale, text.AlignCenter)

	// 绘图区：标题以下、底部标签区以上
	plotX := x + chartPadding
	plotY := y + chartPadding + chartTitleSize + 8
	plotW := w - 2*chartPadding
	plotH := h - (plotY - y) - chartLabelBand
	if plotW <= 0 || plotH <= 0 {
		return
	}

	// 坐标轴（底线）
	axis := c.theme.Chart.Axis.ToRGBA()
	vector.StrokeLine(dst,
		float32(plotX*scale), float32((plotY+plotH)*scale),
		float32((plotX+plotW)*scale), float32((plotY+plotH)*scale),
		float32(1*scale), axis, true)

	intensities := make([]float64, len(c.bands))
	for i, b := range c.bands {
		intensities[i] = b.Intensity
	}

	for i, rect := range BarRects(plotX, plotY, plotW, plotH, intensities) {
		band := c.bands[i]
		vector.DrawFilledRect(dst,
			float32(rect.X*scale), float32(rect.Y*scale),
			float32(rect.W*scale), float32(rect.H*scale),
			band.Color, true)

		// 柱顶数值
		c.drawText(dst, fmt.Sprintf("%.0f", band.Intensity),
			rect.X+rect.W/2, rect.Y-chartLabelSize-chartValueGap, chartLabelSize, scale, text.AlignCenter)

		// 底部标签：频段名 + 波长
		c.drawText(dst, band.Name, rect.X+rect.W/2, plotY+plotH+4, chartLabelSize, scale, text.AlignCenter)
		c.drawText(dst, fmt.Sprintf("%.0fnm", band.Wavelength),
			rect.X+rect.W/2, plotY+plotH+4+chartLabelSize+2, chartLabelSize, scale, text.AlignCenter)
	}
}

// drawText 绘制单行文字（逻辑坐标）
func (c *IntensityChart) drawText(dst *ebiten.Image, s string, x, y, size, scale float64, align text.Align) {
	font, err := utils.LoadFont(size * scale)
	if err != nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(c.theme.Chart.Text.ToRGBA())
	op.PrimaryAlign = align
	text.Draw(dst, s, font, op)
}

// BarRects 计算每根柱子的区域
//
// 柱子在绘图区内均匀分布，高度与强度成正比（满刻度 100）。
// 纯函数，供测试验证布局数学。
func BarRects(plotX, plotY, plotW, plotH float64, intensities []float64) []BarRect {
	n := len(intensities)
	if n == 0 || plotW <= 0 || plotH <= 0 {
		return nil
	}

	// n 根柱子 + (n-1) 个间距；间距为柱宽的固定比例
	barW := plotW / (float64(n) + barGapFraction*float64(n-1))
	gap := barW * barGapFraction

	rects := make([]BarRect, n)
	for i, v := range intensities {
		if v < 0 {
			v = 0
		}
		barH := plotH * v / chartMaxValue
		rects[i] = BarRect{
			X: plotX + float64(i)*(barW+gap),
			Y: plotY + plotH - barH,
			W: barW,
			H: barH,
		}
	}
	return rects
}
