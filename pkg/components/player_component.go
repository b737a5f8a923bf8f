package components

// PlayerComponent 玩家数据
//
// 速度在按住方向键时从 BaseSpeed 逐帧加速到 MaxSpeed，
// 松开所有方向键立即回到 BaseSpeed。
type PlayerComponent struct {
	BaseSpeed     float64
	CurrentSpeed  float64
	MaxSpeed      float64
	AccelPerFrame float64

	Lives int // 剩余生命（不小于 0）
	Score int // 累计得分（只增不减）
	Dead  bool

	Angle float64 // 最近一次移动的方向角（弧度）
}
