package components

// EnemyState 敌人状态机状态
type EnemyState int

const (
	// EnemySeeking 追踪玩家
	EnemySeeking EnemyState = iota
	// EnemyDodging 闪避中：沿垂直方向快速移动，忽略玩家
	EnemyDodging
	// EnemyDying 死亡淡出中：不移动，计时结束后移除
	EnemyDying
)

// String 返回状态名称
func (s EnemyState) String() string {
	switch s {
	case EnemySeeking:
		return "Seeking"
	case EnemyDodging:
		return "Dodging"
	case EnemyDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// EnemyComponent 敌人数据
//
// 状态转换：
//   - Seeking → Dodging（被击中且闪避成功）
//   - Dodging → Seeking（闪避计时结束）
//   - Seeking/Dodging → Dying（被击杀）
//   - Dying → 移除（淡出计时结束）
type EnemyComponent struct {
	State EnemyState
	Speed float64 // 追踪速度，生成时按难度确定
	Angle float64 // 当前朝向玩家的方向角（弧度）

	// 随机摇摆
	MotionIntensity float64 // 随机运动强度，0 表示走直线
	SwayDirection   float64 // -1 或 1

	// 闪避
	HasDodgedBefore bool // 曾经闪避过，一旦置位不再清除
	DodgeFrames     int  // 闪避已进行的帧数
	DodgeVX         float64
	DodgeVY         float64

	// 死亡淡出
	DeathFrames   int     // 已淡出的帧数
	DeathDuration int     // 淡出总帧数
	Alpha         float64 // 透明度 0-1

	// 冻结
	Frozen   bool
	StoredVX float64 // 冻结前的速度
	StoredVY float64
}
