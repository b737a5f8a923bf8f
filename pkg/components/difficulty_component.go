package components

// DifficultyComponent 存储难度控制器的派生数据
// 所有字段都由分数推导，等级只增不减
type DifficultyComponent struct {
	Level           int     // 当前难度等级（从 1 开始）
	SpawnIntervalMs float64 // 敌人生成间隔（毫秒）
	EnemySpeed      float64 // 新生成敌人的追踪速度
	Trajectories    int     // 每次开火的弹道数
	SpawnBurst      int     // 每次生成的敌人数量
}
