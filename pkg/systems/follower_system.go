package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// FollowerSystem 小跟班的跟随、发射与小跟班子弹移动
//
// 小跟班沿玩家位置历史跟随：跟随距离换算成回溯步数，取对应的历史采样作为目标点。
// 冻结期间整帧跳过（含小跟班子弹）。
type FollowerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
	history       *PositionHistory
}

// NewFollowerSystem 创建小跟班系统
func NewFollowerSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand, history *PositionHistory) *FollowerSystem {
	return &FollowerSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		history:       history,
	}
}

// Count 当前小跟班数量
func (s *FollowerSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.FollowerComponent](s.entityManager))
}

// CanRecruit 是否还能增加小跟班
func (s *FollowerSystem) CanRecruit() bool {
	return s.Count() < s.config.Follower.MaxCount
}

// NextIndex 返回最小的未占用序号
// 已满时返回 -1
func (s *FollowerSystem) NextIndex() int {
	used := make(map[int]bool)
	for _, id := range ecs.GetEntitiesWith1[*components.FollowerComponent](s.entityManager) {
		if f, ok := ecs.GetComponent[*components.FollowerComponent](s.entityManager, id); ok {
			used[f.Index] = true
		}
	}
	for i := 0; i < s.config.Follower.MaxCount; i++ {
		if !used[i] {
			return i
		}
	}
	return -1
}

// TargetPosition 返回指定跟随距离对应的目标点
//
// 历史为空时跟在玩家正下方 followDistance 处；
// 否则从最新采样回溯 followDistance / historyStride 步，不足时取最旧的采样。
func (s *FollowerSystem) TargetPosition(followDistance float64) (float64, float64) {
	if s.history == nil || s.history.Len() == 0 {
		_, _, playerPos, ok := findPlayer(s.entityManager)
		if !ok {
			return 0, 0
		}
		return playerPos.X, playerPos.Y + followDistance
	}
	p := s.history.StepsBack(int(followDistance / s.config.Follower.HistoryStride))
	return p.X, p.Y
}

// Recruit 新增一个小跟班，初始位置在其跟随目标点上
//
// 返回:
//   - ecs.EntityID: 新小跟班的实体ID
//   - bool: 已达上限时返回 false
func (s *FollowerSystem) Recruit() (ecs.EntityID, bool) {
	index := s.NextIndex()
	if index < 0 {
		return 0, false
	}
	x, y := s.TargetPosition(entities.FollowDistance(s.config, index))
	id := entities.NewFollowerEntity(s.entityManager, s.config, index, x, y)
	log.Printf("[FollowerSystem] Follower %d recruited at (%.0f, %.0f)", index, x, y)
	return id, true
}

// Update 更新所有小跟班和小跟班子弹
func (s *FollowerSystem) Update() {
	if isGameFrozen(s.entityManager) {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.FollowerComponent, *components.PositionComponent](s.entityManager) {
		follower, _ := ecs.GetComponent[*components.FollowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		s.chase(follower, pos)

		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		timer.CurrentFrames++
		if timer.CurrentFrames >= timer.TargetFrames {
			timer.IsReady = true
			s.fire(pos)
			timer.CurrentFrames = 0
			timer.IsReady = false
		}
	}

	s.updateBullets()
}

// chase 以速度上限追赶目标点，足够近时直接吸附
func (s *FollowerSystem) chase(follower *components.FollowerComponent, pos *components.PositionComponent) {
	tx, ty := s.TargetPosition(follower.FollowDistance)
	dist := utils.Distance(pos.X, pos.Y, tx, ty)
	if dist > follower.MoveSpeed {
		pos.X += (tx - pos.X) / dist * follower.MoveSpeed
		pos.Y += (ty - pos.Y) / dist * follower.MoveSpeed
		return
	}
	pos.X, pos.Y = tx, ty
}

// fire 朝随机方向发射一颗小跟班子弹
func (s *FollowerSystem) fire(pos *components.PositionComponent) {
	angle := s.rng.Float64() * 2 * math.Pi
	vx, vy := utils.FromAngle(angle, s.config.Follower.BulletSpeed)
	entities.NewFollowerBulletEntity(s.entityManager, s.config, pos.X, pos.Y, vx, vy)
}

// updateBullets 移动小跟班子弹，中心点离开游戏区域即移除
func (s *FollowerSystem) updateBullets() {
	screen := utils.Rect{W: s.config.Screen.Width, H: s.config.Screen.Height}
	ids := ecs.GetEntitiesWith3[*components.FollowerBulletComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.X += vel.VX
		pos.Y += vel.VY
		if !screen.ContainsPoint(pos.X, pos.Y) {
			s.entityManager.DestroyEntity(id)
		}
	}
}
