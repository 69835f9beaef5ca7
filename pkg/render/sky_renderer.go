// Package render 把 sky 包的计算结果栅格化为画面
//
// SkyRenderer 绘制天空主画面（渐变、太阳、光线、地面、轨道参考线），
// IntensityChart 绘制散射强度柱状图。两者都只依赖显式传入的角度快照，
// 不读取任何可变的全局状态。
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rayleigh/internal/logger"
	"github.com/gonewx/rayleigh/pkg/config"
	"github.com/gonewx/rayleigh/pkg/sky"
	"github.com/gonewx/rayleigh/pkg/utils"
)

// whiteSubImage 用于顶点着色三角形的 1x1 白色源图
// 取 3x3 白图中间的一个像素，避免采样到边缘（ebiten 官方示例的做法）
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// 天空画面常量（逻辑像素）
const (
	sunRadius        = 22.0 // 太阳盘半径
	observerRadius   = 5.0  // 观察者标记半径
	rayGroundSpread  = 0.35 // 光线落点相对画面宽度的散布范围
	horizonTolerance = 2.0  // 光线可见性判定的地平线容差
	labelMargin      = 4.0  // 文字距画面边缘的最小间距
	labelFontSize    = 13.0 // 标签字号
)

// SkyRenderer 天空画面渲染器
type SkyRenderer struct {
	theme    *config.ThemeConfig
	palette  sky.Palette
	geometry sky.Geometry

	groundColor color.RGBA
	textColor   color.RGBA

	fontWarned bool // 字体加载失败只告警一次
}

// NewSkyRenderer 创建天空渲染器
func NewSkyRenderer(theme *config.ThemeConfig) *SkyRenderer {
	return &SkyRenderer{
		theme:       theme,
		palette:     theme.Palette(),
		geometry:    theme.Geometry(),
		groundColor: theme.Sky.Ground.ToRGBA(),
		textColor:   theme.Chart.Text.ToRGBA(),
	}
}

// Frame 把给定角度的完整一帧绘制到 dst
//
// dst 的尺寸是设备像素，scale 是设备像素密度比。
// 所有几何计算都在逻辑单位（设备像素 / scale）里完成，
// 只在发出绘制调用时乘回 scale，保证高密度屏幕上输出清晰。
// dst 尺寸为零或 scale 非法时直接跳过本次绘制。
func (r *SkyRenderer) Frame(dst *ebiten.Image, angle float64, scale float64, showRays bool) {
	if dst == nil || scale <= 0 {
		return
	}
	bounds := dst.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}

	w := float64(bounds.Dx()) / scale
	h := float64(bounds.Dy()) / scale

	f := sky.SunsetFactor(angle)
	top, horizon := r.palette.SkyColors(angle)
	cx, cy := r.geometry.Observer(w, h)
	sunX, sunY := r.geometry.SunPosition(angle, w, h)
	orbitR := r.geometry.OrbitRadius(w, h)

	r.drawSkyGradient(dst, top, horizon, w, cy, scale)
	r.drawGround(dst, w, h, cy, scale)
	r.drawOrbitGuide(dst, cx, cy, orbitR, scale)
	if showRays {
		r.drawRays(dst, sunX, sunY, cx, cy, w, f, scale)
	}
	r.drawSun(dst, sunX, sunY, angle, f, scale)
	r.drawObserver(dst, cx, cy, scale)
}

// drawSkyGradient 绘制从天顶色到地平线色的垂直渐变
func (r *SkyRenderer) drawSkyGradient(dst *ebiten.Image, top, horizon color.RGBA, w, horizonY, scale float64) {
	vs := []ebiten.Vertex{
		vertexAt(0, 0, top, scale),
		vertexAt(w, 0, top, scale),
		vertexAt(w, horizonY, horizon, scale),
		vertexAt(0, horizonY, horizon, scale),
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, whiteSubImage, nil)
}

// drawGround 绘制地平线以下的地面
func (r *SkyRenderer) drawGround(dst *ebiten.Image, w, h, horizonY, scale float64) {
	vector.DrawFilledRect(dst,
		0, float32(horizonY*scale),
		float32(w*scale), float32((h-horizonY)*scale),
		r.groundColor, true)
}

// drawOrbitGuide 绘制大气层边界的虚线弧和标注
func (r *SkyRenderer) drawOrbitGuide(dst *ebiten.Image, cx, cy, orbitR, scale float64) {
	guideR := orbitR + r.theme.Layout.OrbitGuideOffset
	guideColor := color.RGBA{R: 255, G: 255, B: 255, A: 90}

	// 每 4° 一段，隔段绘制形成虚线
	const stepDeg = 4.0
	for deg := 0.0; deg < 180.0; deg += 2 * stepDeg {
		x0, y0 := arcPoint(cx, cy, guideR, deg)
		x1, y1 := arcPoint(cx, cy, guideR, deg+stepDeg)
		vector.StrokeLine(dst,
			float32(x0*scale), float32(y0*scale),
			float32(x1*scale), float32(y1*scale),
			float32(1*scale), guideColor, true)
	}

	// 标注在弧顶上方，不超出画面上缘
	labelY := clampLabelY(cy-guideR-10, labelMargin)
	r.drawLabel(dst, "Atmosphere Top", cx, labelY, scale, text.AlignCenter)
}

// drawRays 绘制从太阳散向地面的光线束
//
// 每条光线是一个带顶点透明度的细长四边形：太阳端为暖白色，
// 地面端完全透明。光线束整体透明度随日落因子降低——正午清晰、
// 黄昏黯淡。太阳低于地平线（含容差）后不再绘制。
func (r *SkyRenderer) drawRays(dst *ebiten.Image, sunX, sunY, cx, cy, w, sunsetFactor, scale float64) {
	if sunY > cy+horizonTolerance {
		return
	}
	count := r.theme.Sky.RayCount
	if count <= 0 {
		return
	}

	alpha := rayBundleAlpha(sunsetFactor)
	warm := color.RGBA{R: 255, G: 240, B: 210, A: 255}

	for _, tx := range rayTargets(cx, w, count) {
		r.drawRayQuad(dst, sunX, sunY, tx, cy, warm, alpha, scale)
	}
}

// drawRayQuad 绘制单条光线（顶点透明度从太阳端渐隐到地面端）
func (r *SkyRenderer) drawRayQuad(dst *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA, alpha, scale float64) {
	// 沿光线方向的法向量，用于给四边形一点宽度
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	const halfWidth = 1.2
	nx, ny := -dy/length*halfWidth, dx/length*halfWidth

	bright := clr
	bright.A = uint8(math.Round(255 * alpha))
	transparent := clr
	transparent.A = 0

	vs := []ebiten.Vertex{
		vertexAt(x0+nx, y0+ny, bright, scale),
		vertexAt(x0-nx, y0-ny, bright, scale),
		vertexAt(x1-nx, y1-ny, transparent, scale),
		vertexAt(x1+nx, y1+ny, transparent, scale),
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, whiteSubImage, nil)
}

// drawSun 绘制太阳盘和光晕
func (r *SkyRenderer) drawSun(dst *ebiten.Image, sunX, sunY, angle, sunsetFactor, scale float64) {
	sunColor := r.palette.SunColor(angle)

	// 光晕：三层同心圆，半径随日落因子增大（贴近地平线时更大更柔）
	glowR := glowRadius(sunRadius, sunsetFactor)
	for i, layerAlpha := range []uint8{28, 46, 70} {
		layerR := glowR * (1 - 0.22*float64(i))
		glow := sunColor
		glow.A = layerAlpha
		vector.DrawFilledCircle(dst, float32(sunX*scale), float32(sunY*scale), float32(layerR*scale), glow, true)
	}

	vector.DrawFilledCircle(dst, float32(sunX*scale), float32(sunY*scale), float32(sunRadius*scale), sunColor, true)
}

// drawObserver 绘制观察者标记和标注
func (r *SkyRenderer) drawObserver(dst *ebiten.Image, cx, cy, scale float64) {
	marker := color.RGBA{R: 235, G: 238, B: 244, A: 255}
	vector.DrawFilledCircle(dst, float32(cx*scale), float32(cy*scale), float32(observerRadius*scale), marker, true)
	r.drawLabel(dst, "Observer", cx, cy+10, scale, text.AlignCenter)
}

// drawLabel 在逻辑坐标 (x, y) 处绘制一行文字
func (r *SkyRenderer) drawLabel(dst *ebiten.Image, label string, x, y, scale float64, align text.Align) {
	font, err := utils.LoadFont(labelFontSize * scale)
	if err != nil {
		if !r.fontWarned {
			logger.Sugar.Warnw("label font unavailable", "error", err)
			r.fontWarned = true
		}
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(r.textColor)
	op.PrimaryAlign = align
	text.Draw(dst, label, font, op)
}

// vertexAt 构造一个带颜色的顶点（逻辑坐标乘 scale）
func vertexAt(x, y float64, clr color.RGBA, scale float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x * scale),
		DstY:   float32(y * scale),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// arcPoint 返回弧上角度 deg 处的坐标（deg 与太阳角度同一参数化）
func arcPoint(cx, cy, radius, deg float64) (x, y float64) {
	theta := math.Pi - deg*math.Pi/180
	return cx + radius*math.Cos(theta), cy - radius*math.Sin(theta)
}

// rayTargets 返回光线在地面上的落点 X 坐标
// 落点围绕观察者均匀散布，散布宽度为画面宽度的固定比例。
func rayTargets(cx, w float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{cx}
	}
	spread := w * rayGroundSpread
	targets := make([]float64, count)
	for i := 0; i < count; i++ {
		t := float64(i)/float64(count-1) - 0.5
		targets[i] = cx + t*spread
	}
	return targets
}

// rayBundleAlpha 返回光线束的整体透明度
// 正午（因子 0）最清晰，黄昏（因子 1）最黯淡但不完全消失。
func rayBundleAlpha(sunsetFactor float64) float64 {
	return 0.30 * (1 - 0.8*sunsetFactor)
}

// glowRadius 返回光晕半径，随日落因子增大
func glowRadius(baseRadius, sunsetFactor float64) float64 {
	return baseRadius * (1.8 + 2.2*sunsetFactor)
}

// clampLabelY 保证标注不会渲染到画面上缘以外
func clampLabelY(y, margin float64) float64 {
	return math.Max(y, margin)
}
