package systems

import (
	"testing"

	"github.com/decker502/shooter/pkg/components"
)

func TestComboShotDecision(t *testing.T) {
	tests := []struct {
		name      string
		startWith int
		results   []bool
		wantCount int
	}{
		{"全部命中", 0, []bool{true, true}, 1},
		{"部分命中", 2, []bool{false, true, false}, 3},
		{"全部未命中清零", 5, []bool{false, false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			combo := NewComboSystem(w.em, w.cfg)
			comp, _ := findSessionComponent[*components.ComboComponent](w.em)
			comp.Count = tt.startWith

			shot := combo.OpenShot(len(tt.results))
			for i, hit := range tt.results {
				if i < len(tt.results)-1 && combo.Count() != tt.startWith {
					t.Fatalf("批次未结算完时连击改变为 %d", combo.Count())
				}
				combo.NotifyBulletResolved(shot, hit)
			}

			if combo.Count() != tt.wantCount {
				t.Errorf("Count = %d, 期望 %d", combo.Count(), tt.wantCount)
			}
			if combo.PendingShots() != 0 {
				t.Errorf("PendingShots = %d, 期望 0", combo.PendingShots())
			}
		})
	}
}

func TestComboNotifyUnknownShotIsNoop(t *testing.T) {
	w := newTestWorld(t)
	combo := NewComboSystem(w.em, w.cfg)

	shot := combo.OpenShot(1)
	combo.NotifyBulletResolved(shot, true)
	combo.NotifyBulletResolved(shot, false)
	combo.NotifyBulletResolved(0, false)
	combo.NotifyBulletResolved(9999, false)

	if combo.Count() != 1 {
		t.Errorf("Count = %d, 期望 1", combo.Count())
	}
}

func TestComboShotIDsIncrease(t *testing.T) {
	w := newTestWorld(t)
	combo := NewComboSystem(w.em, w.cfg)

	a := combo.OpenShot(1)
	b := combo.OpenShot(2)
	if a == 0 || b <= a {
		t.Errorf("批次ID应单调递增且非零，得到 %d, %d", a, b)
	}
	if combo.OpenShot(0) != 0 {
		t.Error("0 颗子弹不应建立批次")
	}
}

func TestComboDisplayTimer(t *testing.T) {
	w := newTestWorld(t)
	combo := NewComboSystem(w.em, w.cfg)

	combo.NotifyBulletResolved(combo.OpenShot(1), true)
	if combo.Progress() != 1 {
		t.Fatalf("Progress = %v, 期望 1", combo.Progress())
	}

	for i := 0; i < w.cfg.Combo.DisplayFrames/2; i++ {
		combo.Tick()
	}
	if combo.Progress() != 0.5 {
		t.Errorf("Progress = %v, 期望 0.5", combo.Progress())
	}

	for i := 0; i < w.cfg.Combo.DisplayFrames; i++ {
		combo.Tick()
	}
	if combo.Progress() != 0 {
		t.Errorf("Progress = %v, 期望 0", combo.Progress())
	}
	if combo.Count() != 1 {
		t.Error("计时结束不影响连击数")
	}
}
