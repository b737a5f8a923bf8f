package game

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
)

// EntityView 单个实体的渲染数据
type EntityView struct {
	ID     ecs.EntityID
	X, Y   float64 // 中心点
	Width  float64
	Height float64
	Alpha  float64 // 0-1
}

// EnemyView 敌人的渲染数据
type EnemyView struct {
	EntityView
	State  components.EnemyState
	Frozen bool
}

// FollowerView 小跟班的渲染数据
type FollowerView struct {
	EntityView
	Index int
}

// PlayerView 玩家的渲染数据与 HUD 数值
type PlayerView struct {
	EntityView
	Lives    int
	MaxLives int
	Score    int
	Dead     bool
}

// Snapshot 一帧结束后的只读状态副本
// 渲染层与 HUD 只读取 Snapshot，不直接访问实体
type Snapshot struct {
	Player          PlayerView
	Enemies         []EnemyView
	Bullets         []EntityView
	Followers       []FollowerView
	FollowerBullets []EntityView
	Particles       []EntityView

	Level         int
	Trajectories  int
	Combo         int
	ComboProgress float64 // 连击弹出动画进度 1 → 0
	Frozen        bool
	GameOver      bool
	DeathCount    int
}

// Snapshot 生成当前状态的渲染副本
func (gs *GameState) Snapshot() Snapshot {
	em := gs.entityManager
	diff := gs.difficultyState()
	session := gs.session()

	snap := Snapshot{
		Level:         diff.Level,
		Trajectories:  diff.Trajectories,
		Combo:         gs.combo.Count(),
		ComboProgress: gs.combo.Progress(),
		Frozen:        gs.IsFrozen(),
		GameOver:      session.GameOver,
		DeathCount:    session.DeathCount,
	}

	if player := gs.player(); player != nil {
		snap.Player = PlayerView{
			EntityView: viewOf(em, gs.playerID),
			Lives:      player.Lives,
			MaxLives:   gs.config.Player.InitialLives,
			Score:      player.Score,
			Dead:       player.Dead,
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		view := viewOf(em, id)
		view.Alpha = enemy.Alpha
		snap.Enemies = append(snap.Enemies, EnemyView{EntityView: view, State: enemy.State, Frozen: enemy.Frozen})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		snap.Bullets = append(snap.Bullets, viewOf(em, id))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FollowerComponent](em) {
		follower, _ := ecs.GetComponent[*components.FollowerComponent](em, id)
		snap.Followers = append(snap.Followers, FollowerView{EntityView: viewOf(em, id), Index: follower.Index})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FollowerBulletComponent](em) {
		snap.FollowerBullets = append(snap.FollowerBullets, viewOf(em, id))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		view := viewOf(em, id)
		view.Width, view.Height = particle.Size, particle.Size
		if life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok && life.MaxFrames > 0 {
			view.Alpha = float64(life.RemainingFrames) / float64(life.MaxFrames)
		}
		snap.Particles = append(snap.Particles, view)
	}

	return snap
}

// viewOf 读取实体的位置与尺寸
func viewOf(em *ecs.EntityManager, id ecs.EntityID) EntityView {
	view := EntityView{ID: id, Alpha: 1}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		view.X, view.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		view.Width, view.Height = col.Width, col.Height
	}
	return view
}
