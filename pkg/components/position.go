package components

// PositionComponent 实体在游戏区域中的位置
// (X, Y) 为实体中心点，原点在左上角，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
