package components

// SessionComponent 单局游戏的全局计数
// 挂在会话实体上，与 DifficultyComponent、ComboComponent 等共存
type SessionComponent struct {
	ClockMs     float64 // 会话时钟（毫秒），由每帧 deltaTime 累加
	LastSpawnMs float64 // 上次生成敌人的时刻
	DeathCount  int     // 累计失去生命的次数，决定子弹反弹次数
	GameOver    bool    // 生命耗尽后置位
}
