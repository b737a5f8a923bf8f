package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
)

// CollisionSystem 碰撞结算
//
// 所有跨实体的效果（得分、闪避、死亡、小跟班转化、扣血）都在这里发生，
// 各实体系统只负责自身状态机。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
	enemies       *EnemyBehaviorSystem
	bullets       *BulletSystem
	followers     *FollowerSystem
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - rng: 随机数源（闪避判定）
//   - enemies: 敌人系统，用于触发闪避和死亡
//   - bullets: 子弹系统，用于移除子弹并通知连击
//   - followers: 小跟班系统，用于转化小跟班
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand,
	enemies *EnemyBehaviorSystem, bullets *BulletSystem, followers *FollowerSystem) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		enemies:       enemies,
		bullets:       bullets,
		followers:     followers,
	}
}

func (s *CollisionSystem) level() int {
	if diff, ok := findSessionComponent[*components.DifficultyComponent](s.entityManager); ok {
		return diff.Level
	}
	return 1
}

// awardKill 为玩家加上一次击杀的分数
func (s *CollisionSystem) awardKill() {
	if _, player, _, ok := findPlayer(s.entityManager); ok {
		player.Score += s.config.Scoring.KillScore
	}
}

// killEnemy 血溅 + 进入死亡淡出 + 得分
func (s *CollisionSystem) killEnemy(id ecs.EntityID, pos *components.PositionComponent, level int) {
	entities.NewDeathParticles(s.entityManager, s.config, s.rng, pos.X, pos.Y)
	s.enemies.Die(id, level)
	s.awardKill()
}

type enemyTarget struct {
	id    ecs.EntityID
	enemy *components.EnemyComponent
	pos   *components.PositionComponent
	col   *components.CollisionComponent
}

func (s *CollisionSystem) collectEnemies() []enemyTarget {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	targets := make([]enemyTarget, 0, len(ids))
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		targets = append(targets, enemyTarget{id: id, enemy: enemy, pos: pos, col: col})
	}
	return targets
}

// ResolveBulletHits 结算玩家子弹与敌人的碰撞
//
// 与任一敌人重叠的子弹都会被移除，并以命中通知连击系统。
// 被击中的每个敌人依次判定：
//   - 未在死亡中且闪避判定成功：进入闪避，不得分
//   - 曾经闪避过且小跟班未满：转化为小跟班，得分，敌人直接消失
//   - 其他：血溅并进入死亡淡出，得分
func (s *CollisionSystem) ResolveBulletHits() {
	level := s.level()
	dodgeChance := DodgeChanceForLevel(s.config, level)
	targets := s.collectEnemies()

	bulletIDs := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, bulletID := range bulletIDs {
		bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
		bulletCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, bulletID)
		bulletRect := entityRect(bulletPos, bulletCol)

		hits := make([]enemyTarget, 0, 1)
		for _, t := range targets {
			if !s.entityManager.IsAlive(t.id) {
				continue
			}
			if bulletRect.Intersects(entityRect(t.pos, t.col)) {
				hits = append(hits, t)
			}
		}
		if len(hits) == 0 {
			continue
		}

		s.bullets.Remove(bulletID, true)

		for _, t := range hits {
			if s.rng.Float64() < dodgeChance && t.enemy.State != components.EnemyDying {
				s.enemies.Dodge(t.id)
				continue
			}

			if t.enemy.HasDodgedBefore && s.followers.CanRecruit() {
				if _, ok := s.followers.Recruit(); ok {
					s.awardKill()
					s.entityManager.DestroyEntity(t.id)
					continue
				}
			}

			s.killEnemy(t.id, t.pos, level)
		}
	}
}

// ResolveFollowerBulletHits 结算小跟班子弹与敌人的碰撞
// 每颗小跟班子弹至多击杀一个未在死亡中的敌人
func (s *CollisionSystem) ResolveFollowerBulletHits() {
	level := s.level()
	targets := s.collectEnemies()

	ids := ecs.GetEntitiesWith3[*components.FollowerBulletComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, bulletID := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, bulletID)
		bulletRect := entityRect(pos, col)

		for _, t := range targets {
			if !s.entityManager.IsAlive(t.id) || t.enemy.State == components.EnemyDying {
				continue
			}
			if bulletRect.Intersects(entityRect(t.pos, t.col)) {
				s.killEnemy(t.id, t.pos, level)
				s.entityManager.DestroyEntity(bulletID)
				break
			}
		}
	}
}

// ResolvePlayerContact 结算敌人与玩家的接触
//
// 玩家失去一条生命，死亡次数 +1，场上所有敌人（包括死亡淡出中的）
// 立即清除，每个都留下血溅并得分。生命归零时结束本局。
//
// 返回:
//   - bool: 本局是否因此结束
func (s *CollisionSystem) ResolvePlayerContact() bool {
	_, player, _, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}
	session, ok := findSessionComponent[*components.SessionComponent](s.entityManager)
	if !ok {
		return false
	}

	player.Lives--
	if player.Lives < 0 {
		player.Lives = 0
	}
	session.DeathCount++

	cleared := 0
	for _, t := range s.collectEnemies() {
		entities.NewDeathParticles(s.entityManager, s.config, s.rng, t.pos.X, t.pos.Y)
		s.awardKill()
		s.entityManager.DestroyEntity(t.id)
		cleared++
	}

	log.Printf("[CollisionSystem] Player hit: lives=%d, deaths=%d, cleared %d enemies",
		player.Lives, session.DeathCount, cleared)

	if player.Lives == 0 {
		player.Dead = true
		session.GameOver = true
		log.Printf("[CollisionSystem] Game over, final score %d", player.Score)
		return true
	}
	return false
}
