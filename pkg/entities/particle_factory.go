package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// NewDeathParticles 在指定位置创建一组血溅粒子
//
// 每个粒子随机方向、随机速度、随机寿命，
// 运动和淡出由 ParticleSystem 与 LifetimeSystem 负责。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（粒子数量、速度区间、寿命区间）
//   - rng: 随机数源
//   - x, y: 爆开位置
//
// 返回:
//   - []ecs.EntityID: 创建的粒子实体ID
func NewDeathParticles(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand, x, y float64) []ecs.EntityID {
	p := cfg.Particles
	ids := make([]ecs.EntityID, 0, p.Count)

	for i := 0; i < p.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed)
		lifetime := p.MinLifetime + rng.Intn(p.MaxLifetime-p.MinLifetime+1)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, id, &components.VelocityComponent{
			VX: speed * math.Cos(angle),
			VY: speed * math.Sin(angle),
		})
		ecs.AddComponent(em, id, &components.ParticleComponent{
			FallFactor: p.FallFactor,
			Size:       p.Size,
		})
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			MaxFrames:       lifetime,
			RemainingFrames: lifetime,
		})
		ids = append(ids, id)
	}

	return ids
}
