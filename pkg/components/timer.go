package components

// TimerComponent 通用帧计时器组件
// 用于处理周期性行为（如小跟班的发射间隔）
type TimerComponent struct {
	Name          string // 计时器名称，如 "follower_fire"
	TargetFrames  int    // 目标帧数
	CurrentFrames int    // 当前已过帧数
	IsReady       bool   // 计时器是否已完成
}
