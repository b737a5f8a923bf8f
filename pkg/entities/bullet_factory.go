package entities

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// NewBulletEntity 创建玩家子弹实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - x, y: 发射点（玩家中心）
//   - vx, vy: 飞行速度
//   - shotID: 所属开火批次
//   - bounces: 允许的墙壁反弹次数
//   - frozen: 冻结期间发射的子弹以零速度出生，解冻后恢复 (vx, vy)
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
func NewBulletEntity(em *ecs.EntityManager, cfg *config.GameConfig, x, y, vx, vy float64, shotID uint64, bounces int, frozen bool) ecs.EntityID {
	id := em.CreateEntity()

	bullet := &components.BulletComponent{
		ShotID:           shotID,
		BouncesRemaining: bounces,
		StoredVX:         vx,
		StoredVY:         vy,
	}
	vel := &components.VelocityComponent{VX: vx, VY: vy}
	if frozen {
		bullet.Frozen = true
		vel.VX, vel.VY = 0, 0
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, vel)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Bullet.Size,
		Height: cfg.Bullet.Size,
	})
	ecs.AddComponent(em, id, bullet)

	return id
}
