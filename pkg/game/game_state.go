package game

import (
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/systems"
	"github.com/decker502/shooter/pkg/types"
)

// GameState 一局射击游戏的完整模拟状态
//
// GameState 独占所有实体，是唯一的修改者。每帧按固定顺序驱动各系统：
//
//  1. 冻结切换
//  2. 玩家移动，记录位置历史
//  3. 难度更新
//  4. 敌人生成（会话时钟由 deltaTime 推进）
//  5. 开火
//  6. 子弹移动、反弹、出界
//  7. 敌人状态机；玩家接触时扣血并清屏
//  8. 小跟班与小跟班子弹
//  9. 血溅粒子
//  10. 子弹-敌人、小跟班子弹-敌人碰撞
//  11. 连击计时，清理已删除的实体
//
// 生命耗尽后 Update 不再推进，等待 Reset。
type GameState struct {
	config *config.GameConfig
	rng    *rand.Rand

	entityManager *ecs.EntityManager
	history       *systems.PositionHistory

	playerID  ecs.EntityID
	sessionID ecs.EntityID

	playerMovement *systems.PlayerMovementSystem
	difficulty     *systems.DifficultySystem
	spawner        *systems.EnemySpawnSystem
	combo          *systems.ComboSystem
	bullets        *systems.BulletSystem
	enemies        *systems.EnemyBehaviorSystem
	followers      *systems.FollowerSystem
	particles      *systems.ParticleSystem
	lifetime       *systems.LifetimeSystem
	freeze         *systems.FreezeSystem
	collision      *systems.CollisionSystem
}

// NewGameState 创建一局新游戏
//
// 参数:
//   - cfg: 游戏配置，为 nil 时使用默认配置
//   - rng: 随机数源，为 nil 时使用固定种子
//
// 返回:
//   - *GameState: 玩家位于屏幕中心、满生命、难度 1 的新会话
func NewGameState(cfg *config.GameConfig, rng *rand.Rand) *GameState {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	gs := &GameState{
		config: cfg,
		rng:    rng,
	}
	gs.Reset()
	return gs
}

// Reset 重新开始：丢弃所有实体并重建会话
func (gs *GameState) Reset() {
	cfg := gs.config
	em := ecs.NewEntityManager()
	history := systems.NewPositionHistory(cfg.Follower.HistoryCap)

	gs.entityManager = em
	gs.history = history
	gs.sessionID = entities.NewSessionEntity(em, cfg)
	gs.playerID = entities.NewPlayerEntity(em, cfg)

	gs.playerMovement = systems.NewPlayerMovementSystem(em, cfg, history)
	gs.difficulty = systems.NewDifficultySystem(em, cfg)
	gs.spawner = systems.NewEnemySpawnSystem(em, cfg, gs.rng)
	gs.combo = systems.NewComboSystem(em, cfg)
	gs.bullets = systems.NewBulletSystem(em, cfg, gs.combo)
	gs.enemies = systems.NewEnemyBehaviorSystem(em, cfg, gs.rng)
	gs.followers = systems.NewFollowerSystem(em, cfg, gs.rng, history)
	gs.particles = systems.NewParticleSystem(em)
	gs.lifetime = systems.NewLifetimeSystem(em)
	gs.freeze = systems.NewFreezeSystem(em, gs.spawner)
	gs.collision = systems.NewCollisionSystem(em, cfg, gs.rng, gs.enemies, gs.bullets, gs.followers)

	log.Printf("[GameState] New session started (lives=%d, screen=%.0fx%.0f)",
		cfg.Player.InitialLives, cfg.Screen.Width, cfg.Screen.Height)
}

// Update 推进一帧
//
// 参数:
//   - deltaTime: 本帧经过的时间（秒），用于推进会话时钟
//   - input: 本帧采样的输入
func (gs *GameState) Update(deltaTime float64, input types.FrameInput) {
	if gs.IsGameOver() {
		return
	}

	if input.ToggleFreeze {
		gs.ToggleFreeze()
	}

	gs.playerMovement.Update(input)
	gs.difficulty.Update()

	gs.session().ClockMs += deltaTime * 1000
	gs.spawner.Update()

	if input.Fire {
		gs.FireBullet(input.FireX, input.FireY)
	}

	gs.bullets.Update()

	if _, contact := gs.enemies.Update(); contact {
		gs.collision.ResolvePlayerContact()
	}

	gs.followers.Update()
	gs.particles.Update()
	gs.lifetime.Update()

	gs.collision.ResolveBulletHits()
	gs.collision.ResolveFollowerBulletHits()

	gs.combo.Tick()
	gs.entityManager.RemoveMarkedEntities()
}

// FireBullet 朝目标点开火
//
// 返回:
//   - bool: 子弹数达到上限时整次开火被丢弃，返回 false
func (gs *GameState) FireBullet(targetX, targetY float64) bool {
	if gs.IsGameOver() {
		return false
	}
	return gs.bullets.Fire(targetX, targetY)
}

// ToggleFreeze 切换全局冻结
func (gs *GameState) ToggleFreeze() {
	gs.freeze.Toggle()
}

// IsFrozen 是否处于冻结状态
func (gs *GameState) IsFrozen() bool {
	return gs.freeze.IsFrozen()
}

// IsGameOver 本局是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.session().GameOver
}

// FinalScore 当前（结束时即最终）得分
func (gs *GameState) FinalScore() int {
	return gs.player().Score
}

// Config 返回本局使用的配置
func (gs *GameState) Config() *config.GameConfig {
	return gs.config
}

// EntityManager 返回底层实体管理器（只供测试和渲染层读取）
func (gs *GameState) EntityManager() *ecs.EntityManager {
	return gs.entityManager
}

func (gs *GameState) session() *components.SessionComponent {
	session, _ := ecs.GetComponent[*components.SessionComponent](gs.entityManager, gs.sessionID)
	return session
}

func (gs *GameState) player() *components.PlayerComponent {
	player, _ := ecs.GetComponent[*components.PlayerComponent](gs.entityManager, gs.playerID)
	return player
}

func (gs *GameState) difficultyState() *components.DifficultyComponent {
	diff, _ := ecs.GetComponent[*components.DifficultyComponent](gs.entityManager, gs.sessionID)
	return diff
}
