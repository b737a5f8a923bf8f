// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// FrameInput 一帧内已解码的玩家输入
//
// 由输入层在每帧开始时采样一次，交给 GameState.Update 消费。
// 方向键为持续状态，其余字段为边沿触发事件。
type FrameInput struct {
	Up, Down, Left, Right bool

	Fire         bool    // 本帧是否开火
	FireX, FireY float64 // 开火目标点（游戏区域坐标）

	ToggleFreeze bool // 切换冻结
	Restart      bool // 重新开始（仅在游戏结束后生效）
}

// MoveVector 返回四个方向意图叠加后的（未归一化）移动向量
func (in FrameInput) MoveVector() (dx, dy float64) {
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	return dx, dy
}

// HasMovement 是否有非零的移动意图
// 相反方向同时按下时视为没有移动
func (in FrameInput) HasMovement() bool {
	dx, dy := in.MoveVector()
	return dx != 0 || dy != 0
}
