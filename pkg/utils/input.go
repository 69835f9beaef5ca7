package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 当前帧的指针输入状态
//
// 统一鼠标和触摸：触摸优先，其次鼠标。坐标为设备像素。
type InputState struct {
	JustPressed bool // 本帧是否刚刚按下
	Pressed     bool // 是否处于按住状态（拖动用）
	X, Y        int  // 指针位置
}

// GetInputState 获取当前帧的输入状态
func GetInputState() InputState {
	state := InputState{}

	// 触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	// 鼠标输入（桌面设备）
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// In 判断指针是否落在矩形区域内（坐标与区域需用同一单位）
func (s InputState) In(x, y, w, h float64) bool {
	fx, fy := float64(s.X), float64(s.Y)
	return fx >= x && fx < x+w && fy >= y && fy < y+h
}
