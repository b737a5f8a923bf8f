package systems

// HistoryPoint 玩家历史位置采样点
type HistoryPoint struct {
	X, Y float64
}

// PositionHistory 玩家位置历史（有界环形缓冲）
//
// 每帧追加一次玩家中心点，超过容量时丢弃最旧的采样。
// 小跟班按跟随距离回溯若干步取目标点。
type PositionHistory struct {
	buf   []HistoryPoint
	start int // 最旧采样的下标
	size  int
}

// NewPositionHistory 创建指定容量的位置历史
func NewPositionHistory(capacity int) *PositionHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &PositionHistory{buf: make([]HistoryPoint, capacity)}
}

// Append 追加一个采样点，满时覆盖最旧的采样
func (h *PositionHistory) Append(x, y float64) {
	p := HistoryPoint{X: x, Y: y}
	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = p
		h.size++
		return
	}
	h.buf[h.start] = p
	h.start = (h.start + 1) % len(h.buf)
}

// Len 当前采样数
func (h *PositionHistory) Len() int {
	return h.size
}

// Cap 最大容量
func (h *PositionHistory) Cap() int {
	return len(h.buf)
}

// At 返回第 i 个采样（0 为最旧）
// 越界下标会被夹到有效范围内，历史为空时返回零值
func (h *PositionHistory) At(i int) HistoryPoint {
	if h.size == 0 {
		return HistoryPoint{}
	}
	if i < 0 {
		i = 0
	}
	if i >= h.size {
		i = h.size - 1
	}
	return h.buf[(h.start+i)%len(h.buf)]
}

// StepsBack 返回从最新采样回溯 steps 步的采样
// 回溯超过历史起点时返回最旧的采样
func (h *PositionHistory) StepsBack(steps int) HistoryPoint {
	return h.At(h.size - 1 - steps)
}

// Clear 清空历史
func (h *PositionHistory) Clear() {
	h.start = 0
	h.size = 0
}
