package systems

import (
	"math"
	"testing"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
)

func enemyComp(w *testWorld, id ecs.EntityID) *components.EnemyComponent {
	e, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	return e
}

func TestSeekingMovesTowardPlayer(t *testing.T) {
	w := newTestWorld(t)
	sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	id := w.enemy(112, 384)

	if _, contact := sys.Update(); contact {
		t.Fatal("远处的敌人不应接触玩家")
	}
	pos := getPos(w.em, id)
	if math.Abs(pos.X-(112+w.cfg.Enemy.BaseSpeed)) > 1e-9 || math.Abs(pos.Y-384) > 1e-9 {
		t.Errorf("位置 = (%v, %v), 期望 (%v, 384)", pos.X, pos.Y, 112+w.cfg.Enemy.BaseSpeed)
	}

	// 追踪玩家当前位置
	w.playerPos().Y = 100
	sys.Update()
	if enemyComp(w, id).Angle >= 0 {
		t.Errorf("玩家在上方时朝向应向上，Angle = %v", enemyComp(w, id).Angle)
	}
}

func TestSeekingReportsContact(t *testing.T) {
	w := newTestWorld(t)
	sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	w.enemy(100, 100)
	id := w.enemy(540, 384)

	got, contact := sys.Update()
	if !contact || got != id {
		t.Errorf("Update = (%d, %v), 期望 (%d, true)", got, contact, id)
	}
}

func TestSwayAddsPerpendicularMotion(t *testing.T) {
	w := newTestWorld(t)
	w.cfg.Enemy.SwayFlipChance = 0
	sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	id := w.enemy(112, 384)
	enemyComp(w, id).MotionIntensity = 1

	sys.Update()

	vel := getVel(w.em, id)
	if vel.VX != w.cfg.Enemy.BaseSpeed {
		t.Errorf("VX = %v, 期望 %v", vel.VX, w.cfg.Enemy.BaseSpeed)
	}
	if math.Abs(math.Abs(vel.VY)-w.cfg.Enemy.SwaySpeed) > 1e-9 {
		t.Errorf("|VY| = %v, 期望摇摆速度 %v", math.Abs(vel.VY), w.cfg.Enemy.SwaySpeed)
	}
}

func TestDodgeLifecycle(t *testing.T) {
	w := newTestWorld(t)
	sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	id := w.enemy(100, 100)

	sys.Dodge(id)
	e := enemyComp(w, id)
	if e.State != components.EnemyDodging || !e.HasDodgedBefore {
		t.Fatalf("Dodge 后 State = %s, HasDodgedBefore = %v", e.State, e.HasDodgedBefore)
	}
	if speed := math.Hypot(e.DodgeVX, e.DodgeVY); math.Abs(speed-w.cfg.Enemy.DodgeSpeed) > 1e-9 {
		t.Errorf("闪避速度 = %v, 期望 %v", speed, w.cfg.Enemy.DodgeSpeed)
	}
	// 闪避方向垂直于朝向
	hx, hy := math.Cos(e.Angle), math.Sin(e.Angle)
	if dot := hx*e.DodgeVX + hy*e.DodgeVY; math.Abs(dot) > 1e-9 {
		t.Errorf("闪避方向与朝向点积 = %v, 期望 0", dot)
	}

	for i := 0; i < w.cfg.Enemy.DodgeFrames; i++ {
		sys.Update()
	}
	if e.State != components.EnemyDodging {
		t.Fatalf("闪避未满 %d 帧就结束", w.cfg.Enemy.DodgeFrames)
	}
	sys.Update()
	if e.State != components.EnemySeeking {
		t.Errorf("闪避结束后 State = %s, 期望 Seeking", e.State)
	}
	if !e.HasDodgedBefore {
		t.Error("HasDodgedBefore 不应被清除")
	}
}

func TestDieUsesLevelDuration(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 60}, {3, 40}, {5, 20}, {9, 20},
	}
	for _, tt := range tests {
		w := newTestWorld(t)
		sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
		id := w.enemy(100, 100)

		sys.Die(id, tt.level)
		e := enemyComp(w, id)
		if e.DeathDuration != tt.want {
			t.Errorf("L%d: DeathDuration = %d, 期望 %d", tt.level, e.DeathDuration, tt.want)
		}
		if vel := getVel(w.em, id); vel.VX != 0 || vel.VY != 0 {
			t.Error("死亡中的敌人应静止")
		}
	}
}

func TestFrozenEnemyHoldsButDyingFades(t *testing.T) {
	w := newTestWorld(t)
	sys := NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	frozen := w.enemy(100, 100)
	dying := w.enemy(900, 100)
	sys.Die(dying, 1)

	NewFreezeSystem(w.em, nil).Enter()
	for i := 0; i < 10; i++ {
		sys.Update()
	}

	if pos := getPos(w.em, frozen); pos.X != 100 || pos.Y != 100 {
		t.Errorf("冻结的敌人移动到 (%v, %v)", pos.X, pos.Y)
	}
	if e := enemyComp(w, dying); e.DeathFrames != 10 {
		t.Errorf("冻结期间淡出应继续，DeathFrames = %d", e.DeathFrames)
	}
}
