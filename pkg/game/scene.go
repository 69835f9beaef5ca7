// Package game 提供场景管理与设置持久化
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个可更新、可绘制的场景
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 把场景绘制到目标画面
	Draw(screen *ebiten.Image)
}
