package systems

import "testing"

func TestPositionHistoryAppendAndClamp(t *testing.T) {
	h := NewPositionHistory(4)

	if p := h.StepsBack(3); p != (HistoryPoint{}) {
		t.Errorf("空历史应返回零值，得到 %+v", p)
	}

	for i := 1; i <= 3; i++ {
		h.Append(float64(i), float64(i*10))
	}

	tests := []struct {
		name  string
		steps int
		wantX float64
	}{
		{"最新", 0, 3},
		{"回溯一步", 1, 2},
		{"回溯到最旧", 2, 1},
		{"超出起点夹到最旧", 50, 1},
		{"负步数夹到最新", -5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := h.StepsBack(tt.steps); p.X != tt.wantX {
				t.Errorf("StepsBack(%d).X = %v, 期望 %v", tt.steps, p.X, tt.wantX)
			}
		})
	}
}

func TestPositionHistoryDropsOldest(t *testing.T) {
	h := NewPositionHistory(3)
	for i := 1; i <= 5; i++ {
		h.Append(float64(i), 0)
	}

	if h.Len() != 3 || h.Cap() != 3 {
		t.Fatalf("Len/Cap = %d/%d, 期望 3/3", h.Len(), h.Cap())
	}
	for i, want := range []float64{3, 4, 5} {
		if got := h.At(i).X; got != want {
			t.Errorf("At(%d).X = %v, 期望 %v", i, got, want)
		}
	}

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Clear 后 Len = %d", h.Len())
	}
}
