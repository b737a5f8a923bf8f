package entities

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// FollowerFireTimerName 小跟班发射计时器名称
const FollowerFireTimerName = "follower_fire"

// NewFollowerEntity 创建小跟班实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - index: 队列序号，决定跟随距离
//   - x, y: 初始位置（通常为该序号对应的跟随目标点）
//
// 返回:
//   - ecs.EntityID: 小跟班实体ID
func NewFollowerEntity(em *ecs.EntityManager, cfg *config.GameConfig, index int, x, y float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Follower.Size,
		Height: cfg.Follower.Size,
	})
	ecs.AddComponent(em, id, &components.FollowerComponent{
		Index:          index,
		FollowDistance: FollowDistance(cfg, index),
		MoveSpeed:      cfg.Follower.MoveSpeed,
	})
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:         FollowerFireTimerName,
		TargetFrames: cfg.Follower.FireInterval,
	})

	return id
}

// FollowDistance 返回指定序号小跟班的跟随距离
func FollowDistance(cfg *config.GameConfig, index int) float64 {
	return cfg.Follower.Spacing * float64(index+1)
}

// NewFollowerBulletEntity 创建小跟班子弹实体
func NewFollowerBulletEntity(em *ecs.EntityManager, cfg *config.GameConfig, x, y, vx, vy float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Follower.BulletSize,
		Height: cfg.Follower.BulletSize,
	})
	ecs.AddComponent(em, id, &components.FollowerBulletComponent{})

	return id
}
