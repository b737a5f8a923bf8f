package components

// ParticleComponent 血溅粒子
// 位置与速度分别由 PositionComponent、VelocityComponent 保存，寿命由 LifetimeComponent 管理
type ParticleComponent struct {
	FallFactor float64 // 每帧纵向速度乘数
	Size       float64 // 直径（像素）
}
