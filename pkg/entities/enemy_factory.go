package entities

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/utils"
)

// EnemySpawnParams 创建敌人所需的参数
type EnemySpawnParams struct {
	X, Y             float64 // 出生点（中心）
	TargetX, TargetY float64 // 初始追踪目标（玩家中心）
	Speed            float64 // 追踪速度
	MotionIntensity  float64 // 随机运动强度，0 表示走直线
	SwayDirection    float64 // 初始摇摆方向，-1 或 1
}

// NewEnemyEntity 创建敌人实体
// 敌人以 Seeking 状态出生，初始速度直接指向目标
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.GameConfig, p EnemySpawnParams) ecs.EntityID {
	id := em.CreateEntity()

	ux, uy, angle := utils.Direction(p.X, p.Y, p.TargetX, p.TargetY)

	ecs.AddComponent(em, id, &components.PositionComponent{X: p.X, Y: p.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: ux * p.Speed,
		VY: uy * p.Speed,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Enemy.Size,
		Height: cfg.Enemy.Size,
	})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		State:           components.EnemySeeking,
		Speed:           p.Speed,
		Angle:           angle,
		MotionIntensity: p.MotionIntensity,
		SwayDirection:   p.SwayDirection,
		Alpha:           1.0,
	})

	return id
}
