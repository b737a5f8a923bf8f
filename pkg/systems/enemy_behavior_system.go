package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/utils"
)

// EnemyBehaviorSystem 敌人状态机
//
// 每帧按状态更新敌人：
//   - Dying: 只做淡出，冻结时也照常进行，计时结束后移除
//   - 冻结中: 保持不动
//   - Dodging: 沿闪避方向快速移动，计时结束回到 Seeking
//   - Seeking: 朝玩家当前位置追踪，高难度附加垂直摇摆，碰到玩家即上报接触
type EnemyBehaviorSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
}

// NewEnemyBehaviorSystem 创建敌人行为系统
func NewEnemyBehaviorSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// Update 更新所有敌人
//
// 返回:
//   - ecs.EntityID: 与玩家接触的敌人
//   - bool: 本帧是否发生玩家接触；发生接触后本帧不再更新其余敌人
func (s *EnemyBehaviorSystem) Update() (ecs.EntityID, bool) {
	playerID, _, playerPos, hasPlayer := findPlayer(s.entityManager)
	var playerRect utils.Rect
	if hasPlayer {
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID); ok {
			playerRect = entityRect(playerPos, col)
		}
	}

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if enemy.State == components.EnemyDying {
			s.updateDying(id, enemy)
			continue
		}
		if enemy.Frozen {
			continue
		}
		if enemy.State == components.EnemyDodging {
			s.updateDodging(enemy, pos)
			continue
		}
		if !hasPlayer {
			continue
		}

		s.updateSeeking(enemy, pos, vel, playerPos)

		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			if entityRect(pos, col).Intersects(playerRect) {
				return id, true
			}
		}
	}

	return 0, false
}

// updateDying 推进死亡淡出
func (s *EnemyBehaviorSystem) updateDying(id ecs.EntityID, enemy *components.EnemyComponent) {
	enemy.DeathFrames++
	if enemy.DeathFrames > enemy.DeathDuration {
		s.entityManager.DestroyEntity(id)
		return
	}
	enemy.Alpha = 1 - float64(enemy.DeathFrames)/float64(enemy.DeathDuration)
}

// updateDodging 推进闪避移动
func (s *EnemyBehaviorSystem) updateDodging(enemy *components.EnemyComponent, pos *components.PositionComponent) {
	enemy.DodgeFrames++
	if enemy.DodgeFrames > s.config.Enemy.DodgeFrames {
		enemy.State = components.EnemySeeking
		return
	}
	pos.X += enemy.DodgeVX
	pos.Y += enemy.DodgeVY
}

// updateSeeking 朝玩家追踪，附加随机摇摆
func (s *EnemyBehaviorSystem) updateSeeking(enemy *components.EnemyComponent, pos *components.PositionComponent,
	vel *components.VelocityComponent, target *components.PositionComponent) {

	ux, uy, angle := utils.Direction(pos.X, pos.Y, target.X, target.Y)
	enemy.Angle = angle
	moveX := ux * enemy.Speed
	moveY := uy * enemy.Speed

	if enemy.MotionIntensity > 0 {
		if s.rng.Float64() < s.config.Enemy.SwayFlipChance {
			enemy.SwayDirection = s.randomSign()
		}
		perp := angle + enemy.SwayDirection*(math.Pi/2)
		swayX, swayY := utils.FromAngle(perp, s.config.Enemy.SwaySpeed*enemy.MotionIntensity)
		moveX += swayX
		moveY += swayY
	}

	vel.VX, vel.VY = moveX, moveY
	pos.X += moveX
	pos.Y += moveY
}

func (s *EnemyBehaviorSystem) randomSign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Dodge 让敌人进入闪避状态
// 闪避方向垂直于当前朝向，随机向左或向右；HasDodgedBefore 置位后不再清除
func (s *EnemyBehaviorSystem) Dodge(id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}
	enemy.State = components.EnemyDodging
	enemy.HasDodgedBefore = true
	enemy.DodgeFrames = 0

	perp := enemy.Angle + s.randomSign()*(math.Pi/2)
	enemy.DodgeVX, enemy.DodgeVY = utils.FromAngle(perp, s.config.Enemy.DodgeSpeed)
}

// Die 让敌人进入死亡淡出状态
//
// 参数:
//   - id: 敌人实体ID
//   - level: 当前难度等级，等级越高淡出越快
func (s *EnemyBehaviorSystem) Die(id ecs.EntityID, level int) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}
	enemy.State = components.EnemyDying
	enemy.DeathFrames = 0
	enemy.DeathDuration = DeathDurationForLevel(s.config, level)
	enemy.Alpha = 1.0

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX, vel.VY = 0, 0
	}
}
