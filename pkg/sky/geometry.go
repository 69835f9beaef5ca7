package sky

import "math"

// Geometry 太阳轨道的布局比例
//
// 所有字段都是画面逻辑尺寸的比例系数，与具体像素尺寸无关：
// 同一角度在 2 倍大小的画面上，太阳到中心的像素偏移也是 2 倍。
type Geometry struct {
	HorizonRatio     float64 // 地平线（观察者）的纵向位置比例
	OrbitWidthRatio  float64 // 轨道半径相对画面宽度的上限比例
	OrbitHeightRatio float64 // 轨道半径相对画面高度的上限比例
}

// DefaultGeometry 返回默认布局比例
//
// 轨道半径采用视口适配变体：取宽、高两个上限中较小者，
// 保证任意纵横比下整条弧线都在画面内。
func DefaultGeometry() Geometry {
	return Geometry{
		HorizonRatio:     0.87,
		OrbitWidthRatio:  0.45,
		OrbitHeightRatio: 0.75,
	}
}

// Observer 返回观察者坐标（画面水平中心、地平线高度）
func (g Geometry) Observer(width, height float64) (x, y float64) {
	return width / 2, height * g.HorizonRatio
}

// OrbitRadius 返回适配视口的轨道半径
func (g Geometry) OrbitRadius(width, height float64) float64 {
	return math.Min(g.OrbitWidthRatio*width, g.OrbitHeightRatio*height)
}

// SunPosition 返回太阳在画面上的坐标
//
// theta = π - angle：角度 0° 在左侧地平线，90° 在天顶正上方，
// 180° 在右侧地平线，太阳沿以观察者为圆心的半圆弧移动。
func (g Geometry) SunPosition(angle, width, height float64) (x, y float64) {
	cx, cy := g.Observer(width, height)
	r := g.OrbitRadius(width, height)
	theta := math.Pi - angle*math.Pi/180
	return cx + r*math.Cos(theta), cy - r*math.Sin(theta)
}
