package entities

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// NewSessionEntity 创建会话实体
// 会话实体承载一局游戏的全局状态：时钟、难度、连击、冻结
func NewSessionEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SessionComponent{})
	ecs.AddComponent(em, id, &components.DifficultyComponent{
		Level:           1,
		SpawnIntervalMs: cfg.Difficulty.BaseSpawnIntervalMs,
		EnemySpeed:      cfg.Enemy.BaseSpeed,
		Trajectories:    1,
		SpawnBurst:      cfg.Difficulty.SpawnBurst,
	})
	ecs.AddComponent(em, id, &components.ComboComponent{
		NextShotID: 1,
		Shots:      make(map[uint64]*components.ShotRecord),
	})
	ecs.AddComponent(em, id, &components.GameFreezeComponent{})

	return id
}
