package components

// FollowerComponent 小跟班数据
// 小跟班由曾经闪避过的敌人再次被击中转化而来，存活到本局结束
type FollowerComponent struct {
	Index          int     // 队列序号，在存活的小跟班中唯一
	FollowDistance float64 // 跟随距离 = 间距 × (Index + 1)
	MoveSpeed      float64 // 追赶速度上限
}

// FollowerBulletComponent 小跟班子弹标记
// 只伤害敌人，不伤害玩家，也不参与连击统计
type FollowerBulletComponent struct{}
