package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在帧数超过上限的实体(如血溅粒子)
type LifetimeComponent struct {
	MaxFrames       int  // 最大生命周期（帧）
	RemainingFrames int  // 剩余帧数
	IsExpired       bool // 是否已过期
}
