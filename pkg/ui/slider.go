// Package ui 提供模拟器用到的轻量 UI 控件（滑动条、按钮）
//
// 控件不持有全局状态：位置和尺寸每帧由场景布局写入（设备像素），
// 值的变化通过回调通知场景。
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rayleigh/pkg/utils"
)

// 滑动条配色
var (
	sliderTrackColor  = color.RGBA{R: 70, G: 76, B: 90, A: 255}
	sliderFillColor   = color.RGBA{R: 255, G: 196, B: 84, A: 255}
	sliderKnobColor   = color.RGBA{R: 240, G: 242, B: 246, A: 255}
	sliderKnobPressed = color.RGBA{R: 255, G: 220, B: 140, A: 255}
)

// Slider 水平滑动条
//
// 值域 [Min, Max]，按 Step 量化。拖动中每帧回调 OnChange。
type Slider struct {
	// 轨道区域（设备像素），由场景每帧布局
	X, Y, W, H float64

	Min, Max float64 // 值域
	Step     float64 // 量化步长，0 表示连续
	Value    float64 // 当前值

	IsDragging bool // 是否正在拖动

	OnChange func(value float64) // 值变化回调
}

// knobRadius 滑块半径相对轨道高度的比例
const knobRadius = 1.6

// Update 处理本帧输入
func (s *Slider) Update(in utils.InputState) {
	r := s.H * knobRadius
	// 点击判定区域在轨道上下各扩出滑块半径
	if in.JustPressed && in.In(s.X-r, s.Y-r, s.W+2*r, s.H+2*r) {
		s.IsDragging = true
	}
	if !in.Pressed {
		s.IsDragging = false
		return
	}
	if s.IsDragging {
		s.setValue(s.valueAt(float64(in.X)))
	}
}

// Nudge 按步长微调当前值（键盘控制用），direction 取 ±1
func (s *Slider) Nudge(direction float64) {
	step := s.Step
	if step == 0 {
		step = (s.Max - s.Min) / 100
	}
	s.setValue(s.Value + direction*step)
}

// valueAt 把指针 X 坐标映射为量化后的值
func (s *Slider) valueAt(px float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	t := (px - s.X) / s.W
	t = math.Min(1, math.Max(0, t))
	v := s.Min + t*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return v
}

// setValue 更新值并触发回调
func (s *Slider) setValue(v float64) {
	v = math.Min(s.Max, math.Max(s.Min, v))
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Draw 绘制滑动条
func (s *Slider) Draw(dst *ebiten.Image) {
	if s.W <= 0 || s.H <= 0 {
		return
	}

	// 轨道与已填充部分
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), sliderTrackColor, true)
	t := 0.0
	if s.Max > s.Min {
		t = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y), float32(s.W*t), float32(s.H), sliderFillColor, true)

	// 滑块
	knobColor := sliderKnobColor
	if s.IsDragging {
		knobColor = sliderKnobPressed
	}
	kx := s.X + s.W*t
	ky := s.Y + s.H/2
	vector.DrawFilledCircle(dst, float32(kx), float32(ky), float32(s.H*knobRadius), knobColor, true)
}
