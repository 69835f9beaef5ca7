// Package sky 实现天空模拟器的计算核心
//
// 包含四个纯计算模型：
//   - 太阳角度模型（angle.go）：有效仰角、大气路径长度、时段标签
//   - 瑞利散射强度模型（scattering.go）：波长频段相对散射强度表
//   - 天空颜色模型（color.go）：日落因子与天空/太阳颜色插值
//   - 轨道几何模型（geometry.go）：太阳在画面上的弧线位置
//
// 所有函数均为纯函数：给定相同输入输出完全相同，不读取外部可变状态。
// 角度单位为度（°），取值区间 [0, 180]：
// 0 = 日出（左侧地平线），90 = 正午（天顶），180 = 日落（右侧地平线）。
// 超出区间的输入按同样的公式计算，不会崩溃。
package sky

import "math"

// Phase 一天中的时段标签
type Phase int

const (
	PhaseSunrise   Phase = iota // 日出
	PhaseMorning                // 上午
	PhaseMidday                 // 正午
	PhaseAfternoon              // 下午
	PhaseSunset                 // 日落
)

// phaseNames 时段的英文显示名称
var phaseNames = [...]string{"Sunrise", "Morning", "Midday", "Afternoon", "Sunset"}

// String 返回时段的显示名称
func (p Phase) String() string {
	if p < PhaseSunrise || p > PhaseSunset {
		return "Unknown"
	}
	return phaseNames[p]
}

// MinElevation 路径长度公式允许的最低仰角（度）
//
// 这是设计边界而非物理极限：5° 下限使路径长度因子的上限
// 约为 1/sin(5°) ≈ 11.47，避免太阳贴近地平线时除以接近零的正弦值。
const MinElevation = 5.0

// EffectiveAngle 返回相对于最近一侧地平线的有效仰角
//
// 把 [0,180] 折叠为 [0,90]：上午和下午在物理上对称，
// EffectiveAngle(a) == EffectiveAngle(180-a)。
func EffectiveAngle(angle float64) float64 {
	if angle > 90 {
		return 180 - angle
	}
	return angle
}

// ClampedAngle 返回应用了 MinElevation 下限的有效仰角
func ClampedAngle(angle float64) float64 {
	return math.Max(EffectiveAngle(angle), MinElevation)
}

// PathLengthFactor 返回大气路径长度因子
//
// 即阳光穿过大气的相对厚度（天顶垂直路径 = 1），近似为 1/sin(仰角)。
// 由于 ClampedAngle 的下限，返回值始终在 [1, 1/sin(5°)] 区间内。
func PathLengthFactor(angle float64) float64 {
	return 1 / math.Sin(ClampedAngle(angle)*math.Pi/180)
}

// PhaseForAngle 返回角度对应的时段标签
//
// 边界取在原始角度（未折叠）的 20/70/110/160 度处。
// 虽然物理量上午下午对称，但"上午"和"下午"是不同的标签，
// 这样滑块从左到右扫过时能依次看到五个时段。
func PhaseForAngle(angle float64) Phase {
	switch {
	case angle < 20:
		return PhaseSunrise
	case angle < 70:
		return PhaseMorning
	case angle <= 110:
		return PhaseMidday
	case angle <= 160:
		return PhaseAfternoon
	default:
		return PhaseSunset
	}
}
