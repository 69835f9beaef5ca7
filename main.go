package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/rayleigh/internal/logger"
	"github.com/gonewx/rayleigh/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	logFile := flag.String("log", "", "write logs to this file (rotated)")
	themePath := flag.String("theme", "", "path to a YAML theme file")
	flag.Parse()

	simulator, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		LogFile:   *logFile,
		ThemePath: *themePath,
	})
	if err != nil {
		logger.Init(logger.Options{})
		logger.Sugar.Fatalw("failed to initialize", "error", err)
	}
	defer logger.Sync()

	w, h := app.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Rayleigh Scattering Sky Simulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(simulator); err != nil {
		logger.Sugar.Fatalw("game loop terminated", "error", err)
	}
}
