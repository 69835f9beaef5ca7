package sky

import (
	"image/color"
	"math"
)

// sunLowThreshold 太阳盘颜色切换的角度阈值
//
// |angle-90| 超过 70°（即原始角度越过 20°/160° 边界）时，
// 太阳盘从淡黄色跳变为橙红色。这是有意的阶跃而非插值，
// 让颜色"啪"地一下切换到日出/日落状态。
const sunLowThreshold = 70.0

// Palette 天空颜色插值端点
//
// 两组端点各自做线性插值，插值参数为 SunsetFactor。
// 默认值见 DefaultPalette；可由主题配置覆盖。
type Palette struct {
	TopNoon     color.RGBA // 正午天顶蓝
	TopDusk     color.RGBA // 黄昏天顶（压暗的深蓝变体）
	HorizonNoon color.RGBA // 正午地平线（淡蓝白）
	HorizonDusk color.RGBA // 黄昏地平线（暖橙）
	SunHigh     color.RGBA // 太阳高悬时的淡黄色
	SunLow      color.RGBA // 太阳贴近地平线时的橙红色
}

// DefaultPalette 返回默认配色
//
// 天顶色采用"压暗"变体：三个通道整体向深蓝黑过渡，
// 而不是向暖色偏移。端点值与主题配置的默认值保持一致。
func DefaultPalette() Palette {
	return Palette{
		TopNoon:     color.RGBA{R: 64, G: 156, B: 255, A: 255},
		TopDusk:     color.RGBA{R: 25, G: 25, B: 77, A: 255},
		HorizonNoon: color.RGBA{R: 176, G: 224, B: 230, A: 255},
		HorizonDusk: color.RGBA{R: 255, G: 140, B: 66, A: 255},
		SunHigh:     color.RGBA{R: 255, G: 244, B: 184, A: 255},
		SunLow:      color.RGBA{R: 255, G: 111, B: 43, A: 255},
	}
}

// SunsetFactor 返回日落因子 ∈ [0,1]
//
// min(1, (|angle-90|/90)³)：三次缓入曲线，|angle-90| < 45° 时
// 几乎为零，接近地平线时迅速增大。这是风格化的插值参数，
// 不是物理量；正午恰好为 0，两侧地平线恰好为 1。
func SunsetFactor(angle float64) float64 {
	f := math.Pow(math.Abs(angle-90)/90, 3)
	return math.Min(1, f)
}

// SkyColors 返回当前角度下的天顶色和地平线色
func (p Palette) SkyColors(angle float64) (top, horizon color.RGBA) {
	f := SunsetFactor(angle)
	return BlendRGBA(p.TopNoon, p.TopDusk, f), BlendRGBA(p.HorizonNoon, p.HorizonDusk, f)
}

// SunColor 返回太阳盘的颜色（阶跃切换，见 sunLowThreshold）
func (p Palette) SunColor(angle float64) color.RGBA {
	if math.Abs(angle-90) > sunLowThreshold {
		return p.SunLow
	}
	return p.SunHigh
}

// BlendRGBA 在两个颜色之间线性插值，t ∈ [0,1]（超出范围会被截断）
func BlendRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = math.Min(1, math.Max(0, t))
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// lerpChannel 单通道线性插值
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
