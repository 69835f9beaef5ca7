package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rayleigh/pkg/utils"
)

// 按钮配色
var (
	buttonFillColor     = color.RGBA{R: 58, G: 96, B: 150, A: 255}
	buttonHoverColor    = color.RGBA{R: 74, G: 118, B: 178, A: 255}
	buttonDisabledColor = color.RGBA{R: 62, G: 66, B: 76, A: 255}
	buttonBorderColor   = color.RGBA{R: 120, G: 150, B: 190, A: 255}
	buttonTextColor     = color.RGBA{R: 235, G: 238, B: 244, A: 255}
)

// Button 文本按钮
type Button struct {
	// 区域（设备像素），由场景每帧布局
	X, Y, W, H float64

	Label    string           // 按钮文字
	Font     *text.GoTextFace // 文字字体，nil 时只画底色
	Disabled bool             // 禁用时不响应点击且变灰

	IsHovered bool // 指针是否悬停

	OnClick func() // 点击回调
}

// Update 处理本帧输入
func (b *Button) Update(in utils.InputState) {
	b.IsHovered = in.In(b.X, b.Y, b.W, b.H)
	if b.Disabled {
		return
	}
	if in.JustPressed && b.IsHovered && b.OnClick != nil {
		b.OnClick()
	}
}

// Draw 绘制按钮
func (b *Button) Draw(dst *ebiten.Image) {
	if b.W <= 0 || b.H <= 0 {
		return
	}

	fill := buttonFillColor
	switch {
	case b.Disabled:
		fill = buttonDisabledColor
	case b.IsHovered:
		fill = buttonHoverColor
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, buttonBorderColor, true)

	if b.Font == nil || b.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(b.X+b.W/2, b.Y+b.H/2)
	op.ColorScale.ScaleWithColor(buttonTextColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, b.Label, b.Font, op)
}
