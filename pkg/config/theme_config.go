// Package config 提供模拟器的主题与布局配置
//
// 配置有一套内置默认值（DefaultTheme），可通过 -theme 参数指定
// YAML 文件覆盖其中任意字段。加载后统一经过 Validate 校验，
// 非法配置在启动阶段报错，不会进入渲染循环。
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/gonewx/rayleigh/pkg/sky"
	"gopkg.in/yaml.v3"
)

// RGB YAML 友好的颜色表示（不含透明通道，显示时恒为不透明）
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// ToRGBA 转换为标准库颜色
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fromRGBA 从标准库颜色构建（丢弃透明通道）
func fromRGBA(c color.RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SkyTheme 天空画面的颜色与元素配置
type SkyTheme struct {
	TopNoon     RGB `yaml:"topNoon"`     // 正午天顶色
	TopDusk     RGB `yaml:"topDusk"`     // 黄昏天顶色
	HorizonNoon RGB `yaml:"horizonNoon"` // 正午地平线色
	HorizonDusk RGB `yaml:"horizonDusk"` // 黄昏地平线色
	SunHigh     RGB `yaml:"sunHigh"`     // 太阳高悬颜色
	SunLow      RGB `yaml:"sunLow"`      // 太阳贴地颜色
	Ground      RGB `yaml:"ground"`      // 地面色（深色中性调）
	RayCount    int `yaml:"rayCount"`    // 光线条数
}

// LayoutTheme 画面布局比例
type LayoutTheme struct {
	HorizonRatio     float64 `yaml:"horizonRatio"`     // 地平线纵向位置 (0,1]
	OrbitWidthRatio  float64 `yaml:"orbitWidthRatio"`  // 轨道半径宽度上限比例
	OrbitHeightRatio float64 `yaml:"orbitHeightRatio"` // 轨道半径高度上限比例
	OrbitGuideOffset float64 `yaml:"orbitGuideOffset"` // 大气层虚线弧相对轨道的偏移（逻辑像素）
	BottomPanelH     float64 `yaml:"bottomPanelH"`     // 底部控制面板高度（逻辑像素）
}

// ChartTheme 散射强度柱状图配色
type ChartTheme struct {
	Background RGB `yaml:"background"` // 图表背景
	Axis       RGB `yaml:"axis"`       // 坐标轴
	Text       RGB `yaml:"text"`       // 标签文字
}

// ThemeConfig 模拟器主题配置
type ThemeConfig struct {
	Sky    SkyTheme    `yaml:"sky"`
	Layout LayoutTheme `yaml:"layout"`
	Chart  ChartTheme  `yaml:"chart"`
}

// DefaultTheme 返回内置默认主题
//
// 颜色端点与 sky.DefaultPalette 保持一致，布局比例与
// sky.DefaultGeometry 保持一致，两边改动需要同步。
func DefaultTheme() *ThemeConfig {
	palette := sky.DefaultPalette()
	geometry := sky.DefaultGeometry()
	return &ThemeConfig{
		Sky: SkyTheme{
			TopNoon:     fromRGBA(palette.TopNoon),
			TopDusk:     fromRGBA(palette.TopDusk),
			HorizonNoon: fromRGBA(palette.HorizonNoon),
			HorizonDusk: fromRGBA(palette.HorizonDusk),
			SunHigh:     fromRGBA(palette.SunHigh),
			SunLow:      fromRGBA(palette.SunLow),
			Ground:      RGB{R: 34, G: 40, B: 35},
			RayCount:    12,
		},
		Layout: LayoutTheme{
			HorizonRatio:     geometry.HorizonRatio,
			OrbitWidthRatio:  geometry.OrbitWidthRatio,
			OrbitHeightRatio: geometry.OrbitHeightRatio,
			OrbitGuideOffset: 26,
			BottomPanelH:     210,
		},
		Chart: ChartTheme{
			Background: RGB{R: 24, G: 28, B: 38},
			Axis:       RGB{R: 120, G: 128, B: 140},
			Text:       RGB{R: 225, G: 228, B: 235},
		},
	}
}

// LoadTheme 读取 YAML 主题文件并覆盖默认值
//
// path 为空时直接返回默认主题。文件中省略的字段保留默认值。
func LoadTheme(path string) (*ThemeConfig, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return theme, nil
}

// Validate 校验主题配置
func (t *ThemeConfig) Validate() error {
	if t.Layout.HorizonRatio <= 0 || t.Layout.HorizonRatio > 1 {
		return fmt.Errorf("layout.horizonRatio must be in (0,1], got %v", t.Layout.HorizonRatio)
	}
	if t.Layout.OrbitWidthRatio <= 0 || t.Layout.OrbitWidthRatio > 1 {
		return fmt.Errorf("layout.orbitWidthRatio must be in (0,1], got %v", t.Layout.OrbitWidthRatio)
	}
	if t.Layout.OrbitHeightRatio <= 0 || t.Layout.OrbitHeightRatio > 1 {
		return fmt.Errorf("layout.orbitHeightRatio must be in (0,1], got %v", t.Layout.OrbitHeightRatio)
	}
	if t.Layout.BottomPanelH < 120 {
		return fmt.Errorf("layout.bottomPanelH must be at least 120, got %v", t.Layout.BottomPanelH)
	}
	if t.Sky.RayCount < 0 || t.Sky.RayCount > 64 {
		return fmt.Errorf("sky.rayCount must be in [0,64], got %d", t.Sky.RayCount)
	}
	return nil
}

// Palette 转换为天空颜色模型的插值端点
func (t *ThemeConfig) Palette() sky.Palette {
	return sky.Palette{
		TopNoon:     t.Sky.TopNoon.ToRGBA(),
		TopDusk:     t.Sky.TopDusk.ToRGBA(),
		HorizonNoon: t.Sky.HorizonNoon.ToRGBA(),
		HorizonDusk: t.Sky.HorizonDusk.ToRGBA(),
		SunHigh:     t.Sky.SunHigh.ToRGBA(),
		SunLow:      t.Sky.SunLow.ToRGBA(),
	}
}

// Geometry 转换为轨道几何模型的布局比例
func (t *ThemeConfig) Geometry() sky.Geometry {
	return sky.Geometry{
		HorizonRatio:     t.Layout.HorizonRatio,
		OrbitWidthRatio:  t.Layout.OrbitWidthRatio,
		OrbitHeightRatio: t.Layout.OrbitHeightRatio,
	}
}
