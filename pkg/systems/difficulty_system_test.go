package systems

import (
	"testing"

	"github.com/decker502/shooter/pkg/config"
)

func TestDifficultyFormulas(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		level            int
		wantIntervalMs   float64
		wantEnemySpeed   float64
		wantTrajectories int
		wantDeathFrames  int
		wantDodge        float64
		wantMotion       float64
	}{
		{1, 2000, 2.0, 1, 60, 0.4, 0},
		{2, 1800, 2.5, 1, 50, 0.2, 0.5},
		{3, 1600, 3.0, 2, 40, 0.1, 0.8},
		{4, 1400, 3.5, 2, 30, 0, 1.1},
		{5, 1200, 4.0, 3, 20, 0, 1.4},
		{8, 800, 5.5, 4, 20, 0, 2.3},
		{12, 800, 7.5, 6, 20, 0, 3.5},
	}

	for _, tt := range tests {
		if got := SpawnIntervalForLevel(cfg, tt.level); got != tt.wantIntervalMs {
			t.Errorf("L%d: SpawnInterval = %v, 期望 %v", tt.level, got, tt.wantIntervalMs)
		}
		if got := EnemySpeedForLevel(cfg, tt.level); got != tt.wantEnemySpeed {
			t.Errorf("L%d: EnemySpeed = %v, 期望 %v", tt.level, got, tt.wantEnemySpeed)
		}
		if got := DeathDurationForLevel(cfg, tt.level); got != tt.wantDeathFrames {
			t.Errorf("L%d: DeathDuration = %v, 期望 %v", tt.level, got, tt.wantDeathFrames)
		}
		if got := DodgeChanceForLevel(cfg, tt.level); got != tt.wantDodge {
			t.Errorf("L%d: DodgeChance = %v, 期望 %v", tt.level, got, tt.wantDodge)
		}
		if got := MotionIntensityForLevel(cfg, tt.level); got < tt.wantMotion-1e-9 || got > tt.wantMotion+1e-9 {
			t.Errorf("L%d: MotionIntensity = %v, 期望 %v", tt.level, got, tt.wantMotion)
		}
	}
}

func TestTrajectoriesForLevel(t *testing.T) {
	cfg := config.DefaultGameConfig()
	for level := 1; level <= 30; level++ {
		want := 1 + (level-1)/2
		if got := TrajectoriesForLevel(cfg, level); got != want {
			t.Errorf("L%d: Trajectories = %d, 期望 %d", level, got, want)
		}
	}
}

func TestDifficultyCurvesAreMonotonic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	for level := 2; level <= 50; level++ {
		if SpawnIntervalForLevel(cfg, level) > SpawnIntervalForLevel(cfg, level-1) {
			t.Errorf("生成间隔在 L%d 变大", level)
		}
		if SpawnIntervalForLevel(cfg, level) < cfg.Difficulty.FloorSpawnIntervalMs {
			t.Errorf("生成间隔在 L%d 低于下限", level)
		}
		if EnemySpeedForLevel(cfg, level) < EnemySpeedForLevel(cfg, level-1) {
			t.Errorf("敌人速度在 L%d 变小", level)
		}
	}
}

func TestLevelForScore(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tests := []struct {
		score int
		want  int
	}{
		{-10, 1}, {0, 1}, {49, 1}, {50, 2}, {99, 2}, {100, 3}, {150, 4},
	}
	for _, tt := range tests {
		if got := LevelForScore(cfg, tt.score); got != tt.want {
			t.Errorf("LevelForScore(%d) = %d, 期望 %d", tt.score, got, tt.want)
		}
	}
}

func TestDifficultySystemUpdate(t *testing.T) {
	w := newTestWorld(t)
	sys := NewDifficultySystem(w.em, w.cfg)

	if sys.Update() {
		t.Error("0 分时不应升级")
	}

	w.player().Score = 160
	if !sys.Update() {
		t.Fatal("160 分时应升级")
	}
	diff := w.difficulty()
	if diff.Level != 4 || diff.Trajectories != 2 || diff.EnemySpeed != 3.5 {
		t.Errorf("升级后 = %+v", *diff)
	}
	if diff.SpawnBurst != 1 {
		t.Errorf("SpawnBurst = %d, 期望固定为 1", diff.SpawnBurst)
	}

	// 等级只升不降
	w.player().Score = 0
	if sys.Update() || w.difficulty().Level != 4 {
		t.Error("分数降低时等级不应回退")
	}
}
