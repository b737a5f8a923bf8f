package components

// ShotRecord 一次开火的结算记录
type ShotRecord struct {
	Pending int  // 尚未结算的子弹数
	AnyHit  bool // 是否至少有一颗子弹命中
}

// ComboComponent 连击追踪状态
//
// 每次开火按 NextShotID 建立一条 ShotRecord，
// 该次开火的所有子弹结算完毕后做一次连击判定并删除记录。
type ComboComponent struct {
	NextShotID   uint64
	Shots        map[uint64]*ShotRecord
	Count        int // 连续命中的开火次数
	DisplayTimer int // 连击弹出剩余显示帧数
}
