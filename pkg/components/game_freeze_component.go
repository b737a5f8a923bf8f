package components

// GameFreezeComponent 游戏冻结组件
//
// 挂在会话实体上，标记全局冻结（暂停）状态。
//
// 系统行为：
// - EnemyBehaviorSystem: 冻结的敌人不移动，死亡淡出照常进行
// - BulletSystem: 冻结的子弹速度为零，不做边界判定
// - FollowerSystem: 检测到冻结时整帧跳过（含小跟班子弹）
// - EnemySpawnSystem: 冻结期间不生成敌人，并把生成计时点推到当前时刻
//
// 设计原则（ECS零耦合）：
// - 系统通过查询此组件决定是否更新
// - 避免全局标志位
type GameFreezeComponent struct {
	IsFrozen bool // 是否已冻结
}
