package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
)

// SpawnEdge 敌人出生的屏幕边缘
type SpawnEdge int

const (
	SpawnEdgeTop    SpawnEdge = iota // 上边缘
	SpawnEdgeBottom                  // 下边缘
	SpawnEdgeLeft                    // 左边缘
	SpawnEdgeRight                   // 右边缘
)

// EnemySpawnSystem 按会话时钟定时生成敌人
//
// 距上次生成的时间达到当前生成间隔时，在随机屏幕边缘外生成一批敌人，
// 并把计时点重置为当前时刻。冻结期间不生成，计时点始终跟随当前时刻，
// 解冻后需要完整等待一个间隔。
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
}

// NewEnemySpawnSystem 创建敌人生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// Update 检查生成计时并按需生成敌人
//
// 返回:
//   - int: 本帧生成的敌人数
func (s *EnemySpawnSystem) Update() int {
	session, ok := findSessionComponent[*components.SessionComponent](s.entityManager)
	if !ok {
		return 0
	}
	diff, ok := findSessionComponent[*components.DifficultyComponent](s.entityManager)
	if !ok {
		return 0
	}

	if isGameFrozen(s.entityManager) {
		session.LastSpawnMs = session.ClockMs
		return 0
	}

	if session.ClockMs-session.LastSpawnMs < diff.SpawnIntervalMs {
		return 0
	}

	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return 0
	}

	intensity := MotionIntensityForLevel(s.config, diff.Level)
	for i := 0; i < diff.SpawnBurst; i++ {
		x, y := s.spawnPoint(SpawnEdge(s.rng.Intn(4)))
		entities.NewEnemyEntity(s.entityManager, s.config, entities.EnemySpawnParams{
			X:               x,
			Y:               y,
			TargetX:         playerPos.X,
			TargetY:         playerPos.Y,
			Speed:           diff.EnemySpeed,
			MotionIntensity: intensity,
			SwayDirection:   s.randomSign(),
		})
	}
	session.LastSpawnMs = session.ClockMs

	return diff.SpawnBurst
}

// spawnPoint 计算指定边缘外的出生中心点（含随机扰动）
// 敌人整体位于屏幕外 SpawnOffset 处，沿边缘方向随机分布
func (s *EnemySpawnSystem) spawnPoint(edge SpawnEdge) (float64, float64) {
	w, h := s.config.Screen.Width, s.config.Screen.Height
	outside := s.config.Enemy.SpawnOffset - s.config.Enemy.Size/2

	var x, y float64
	switch edge {
	case SpawnEdgeTop:
		x, y = float64(s.rng.Intn(int(w)+1)), -outside
	case SpawnEdgeBottom:
		x, y = float64(s.rng.Intn(int(w)+1)), h+outside
	case SpawnEdgeLeft:
		x, y = -outside, float64(s.rng.Intn(int(h)+1))
	default:
		x, y = w+outside, float64(s.rng.Intn(int(h)+1))
	}

	x += s.jitter()
	y += s.jitter()
	return x, y
}

// jitter 返回 [-SpawnJitter, SpawnJitter] 的整数扰动
func (s *EnemySpawnSystem) jitter() float64 {
	j := s.config.Enemy.SpawnJitter
	if j == 0 {
		return 0
	}
	return float64(s.rng.Intn(2*j+1) - j)
}

func (s *EnemySpawnSystem) randomSign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// ResetTimer 把生成计时点重置为当前时刻
func (s *EnemySpawnSystem) ResetTimer() {
	if session, ok := findSessionComponent[*components.SessionComponent](s.entityManager); ok {
		session.LastSpawnMs = session.ClockMs
		log.Printf("[EnemySpawnSystem] Spawn timer reset at %.0fms", session.ClockMs)
	}
}
