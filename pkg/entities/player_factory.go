package entities

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
// 玩家出生在游戏区域中心，满生命、零分、基础速度
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Screen.Height / 2,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Player.Size,
		Height: cfg.Player.Size,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		BaseSpeed:     cfg.Player.BaseSpeed,
		CurrentSpeed:  cfg.Player.BaseSpeed,
		MaxSpeed:      cfg.MaxPlayerSpeed(),
		AccelPerFrame: cfg.Player.AccelPerFrame,
		Lives:         cfg.Player.InitialLives,
	})

	return id
}
