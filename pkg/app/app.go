// Package app 提供模拟器应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：日志、主题、设置存储、
// 解说客户端和场景在这里装配完成，main.go 只负责解析命令行参数
// 和调用 ebiten.RunGame。
package app

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/rayleigh/internal/logger"
	"github.com/gonewx/rayleigh/pkg/config"
	"github.com/gonewx/rayleigh/pkg/explain"
	"github.com/gonewx/rayleigh/pkg/game"
	"github.com/gonewx/rayleigh/pkg/scenes"
)

// 默认窗口尺寸（逻辑像素）
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 640
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用 debug 级别日志
	Verbose bool
	// LogFile 日志文件路径，为空则只输出到控制台
	LogFile string
	// ThemePath YAML 主题文件路径，为空则使用内置默认主题
	ThemePath string
}

// App 模拟器应用，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
}

// NewApp 创建并装配模拟器应用
func NewApp(cfg Config) (*App, error) {
	level := "info"
	if cfg.Verbose {
		level = "debug"
	}
	logger.Init(logger.Options{Level: level, File: cfg.LogFile})

	theme, err := config.LoadTheme(cfg.ThemePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	// gdata 打开失败进入降级模式（设置只保留在内存中）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "rayleigh_sky"})
	if err != nil {
		logger.Sugar.Warnw("settings storage unavailable, running without persistence", "error", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	client := explain.NewClient(explain.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  settings.Settings().ExplainModel,
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewSkyScene(settings, theme, client))

	if settings.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Sugar.Infow("app initialized", "theme", cfg.ThemePath, "fullscreen", settings.Settings().Fullscreen)
	return &App{
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// Update 更新应用逻辑（每 tick 一次，通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏并记住偏好
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			logger.Sugar.Warnw("failed to save settings", "error", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制应用画面（每帧一次）
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑画面尺寸
//
// 高密度屏幕处理：后备缓冲按设备像素密度比放大，几何计算保持
// 在逻辑单位（见 render.SkyRenderer.Frame），否则输出会发虚或过大。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// WindowSize 返回默认窗口尺寸
func WindowSize() (int, int) {
	return defaultWindowWidth, defaultWindowHeight
}
