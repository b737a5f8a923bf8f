package components

// BulletComponent 玩家子弹数据
type BulletComponent struct {
	ShotID           uint64 // 所属开火批次，0 表示不参与连击统计
	BouncesRemaining int    // 剩余墙壁反弹次数

	Frozen   bool
	StoredVX float64 // 冻结前的速度
	StoredVY float64
}
