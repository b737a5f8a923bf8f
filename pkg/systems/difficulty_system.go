package systems

import (
	"log"
	"math"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// DifficultySystem 难度控制器
//
// 难度等级完全由分数推导：level = score / scoreStep + 1，只增不减。
// 等级提升时重新计算生成间隔、敌人速度和弹道数；每次生成的敌人数固定不变。
type DifficultySystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem(em *ecs.EntityManager, cfg *config.GameConfig) *DifficultySystem {
	return &DifficultySystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 根据当前分数更新难度
//
// 返回:
//   - bool: 本帧是否升级
func (s *DifficultySystem) Update() bool {
	diff, ok := findSessionComponent[*components.DifficultyComponent](s.entityManager)
	if !ok {
		return false
	}
	_, player, _, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}

	newLevel := LevelForScore(s.config, player.Score)
	if newLevel <= diff.Level {
		return false
	}

	diff.Level = newLevel
	diff.SpawnIntervalMs = SpawnIntervalForLevel(s.config, newLevel)
	diff.EnemySpeed = EnemySpeedForLevel(s.config, newLevel)
	diff.Trajectories = TrajectoriesForLevel(s.config, newLevel)
	diff.SpawnBurst = s.config.Difficulty.SpawnBurst

	log.Printf("[DifficultySystem] Level up -> %d (interval=%.0fms, enemySpeed=%.1f, trajectories=%d)",
		diff.Level, diff.SpawnIntervalMs, diff.EnemySpeed, diff.Trajectories)
	return true
}

// LevelForScore 分数对应的难度等级
func LevelForScore(cfg *config.GameConfig, score int) int {
	if score < 0 {
		score = 0
	}
	return score/cfg.Difficulty.ScoreStep + 1
}

// SpawnIntervalForLevel 生成间隔 = max(下限, 基础间隔 - (L-1)×步长)
func SpawnIntervalForLevel(cfg *config.GameConfig, level int) float64 {
	d := cfg.Difficulty
	return math.Max(d.FloorSpawnIntervalMs, d.BaseSpawnIntervalMs-float64(level-1)*d.SpawnIntervalStepMs)
}

// EnemySpeedForLevel 敌人速度 = 基础速度 + (L-1)×步长
func EnemySpeedForLevel(cfg *config.GameConfig, level int) float64 {
	return cfg.Enemy.BaseSpeed + float64(level-1)*cfg.Difficulty.EnemySpeedStep
}

// TrajectoriesForLevel 弹道数 = 1 + (L-1) / levelsPerTrajectory
func TrajectoriesForLevel(cfg *config.GameConfig, level int) int {
	return 1 + (level-1)/cfg.Difficulty.LevelsPerTrajectory
}

// DeathDurationForLevel 死亡淡出帧数 = max(下限, 基础帧数 - (L-1)×步长)
func DeathDurationForLevel(cfg *config.GameConfig, level int) int {
	d := cfg.Difficulty
	frames := d.DeathFrames - (level-1)*d.DeathFramesStep
	if frames < d.MinDeathFrames {
		return d.MinDeathFrames
	}
	return frames
}

// DodgeChanceForLevel 闪避概率，未在表中列出的等级为 0
func DodgeChanceForLevel(cfg *config.GameConfig, level int) float64 {
	return cfg.Difficulty.DodgeChances[level]
}

// MotionIntensityForLevel 新生成敌人的随机运动强度
// 低于起始等级时为 0（走直线）
func MotionIntensityForLevel(cfg *config.GameConfig, level int) float64 {
	e := cfg.Enemy
	if level < e.MotionMinLevel {
		return 0
	}
	return e.MotionBase + float64(level-e.MotionMinLevel)*e.MotionPerLevel
}
