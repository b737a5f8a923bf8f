// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/shooter/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// GetInputState 获取当前帧的指针输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// IsSecondaryJustClicked 检查右键是否刚刚按下
// 右键在游戏中切换冻结，在菜单中暂停装饰动画，在结束界面重新开始
func IsSecondaryJustClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// IsConfirmJustPressed 检查回车是否刚刚按下
func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// anyKeyPressed 任一按键处于按下状态
func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReadFrameInput 采样当前帧的完整游戏输入
//
// 方向键与 WASD 都可移动；左键（或触摸）开火，目标为点击位置；
// 右键切换冻结；回车、R 键、右键在结束后重新开始。
//
// 必须在 ebiten 的 Update 中调用，每帧一次。
func ReadFrameInput() types.FrameInput {
	in := types.FrameInput{
		Up:    anyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyKeyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  anyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}

	if pointer := GetInputState(); pointer.JustPressed {
		in.Fire = true
		in.FireX = float64(pointer.X)
		in.FireY = float64(pointer.Y)
	}

	secondary := IsSecondaryJustClicked()
	in.ToggleFreeze = secondary
	in.Restart = secondary || IsConfirmJustPressed() || inpututil.IsKeyJustPressed(ebiten.KeyR)

	return in
}
