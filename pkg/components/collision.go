package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以 PositionComponent 为中心，用于子弹与敌人、敌人与玩家之间的重叠判定
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
