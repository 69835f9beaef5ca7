package sky

import (
	"image/color"
	"math"
)

// WavelengthBand 一个波长频段的散射数据
//
// Intensity 是相对散射强度：按最短波长（蓝光）归一化为 100。
type WavelengthBand struct {
	Name       string     // 频段名称（Blue/Green/Red）
	Wavelength float64    // 波长（纳米）
	Intensity  float64    // 相对散射强度（Blue = 100）
	Color      color.RGBA // 图表中的显示颜色
}

// 三个固定波长频段（纳米）
const (
	BlueWavelength  = 450.0
	GreenWavelength = 550.0
	RedWavelength   = 650.0
)

// bands 瑞利散射强度表
//
// 散射强度 ∝ 1/λ⁴，与太阳角度无关。
// 表在包初始化时计算一次，之后作为常量使用，不在每帧路径中重算。
var bands = buildBands()

// buildBands 构建散射强度表（顺序即图表显示顺序：蓝、绿、红）
func buildBands() []WavelengthBand {
	return []WavelengthBand{
		{Name: "Blue", Wavelength: BlueWavelength, Intensity: RelativeIntensity(BlueWavelength), Color: color.RGBA{R: 70, G: 130, B: 255, A: 255}},
		{Name: "Green", Wavelength: GreenWavelength, Intensity: RelativeIntensity(GreenWavelength), Color: color.RGBA{R: 60, G: 179, B: 113, A: 255}},
		{Name: "Red", Wavelength: RedWavelength, Intensity: RelativeIntensity(RedWavelength), Color: color.RGBA{R: 229, G: 83, B: 60, A: 255}},
	}
}

// RelativeIntensity 返回给定波长的相对散射强度
//
// (1/λ⁴) / (1/450⁴) × 100，即 (450/λ)⁴ × 100。
// 蓝光（450nm）恰好为 100，波长越长强度越低。
func RelativeIntensity(wavelength float64) float64 {
	return math.Pow(BlueWavelength/wavelength, 4) * 100
}

// Bands 返回波长频段表
//
// 返回的切片是包级常量表，调用方不应修改其内容。
func Bands() []WavelengthBand {
	return bands
}
