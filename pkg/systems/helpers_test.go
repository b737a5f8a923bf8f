package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
)

// testWorld 测试用的最小会话：会话实体 + 玩家
type testWorld struct {
	em       *ecs.EntityManager
	cfg      *config.GameConfig
	rng      *rand.Rand
	playerID ecs.EntityID
}

// newTestWorld 创建关闭闪避、固定随机种子的测试会话
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Difficulty.DodgeChances = map[int]float64{}
	em := ecs.NewEntityManager()
	entities.NewSessionEntity(em, cfg)
	return &testWorld{
		em:       em,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(1)),
		playerID: entities.NewPlayerEntity(em, cfg),
	}
}

func (w *testWorld) session() *components.SessionComponent {
	s, _ := findSessionComponent[*components.SessionComponent](w.em)
	return s
}

func (w *testWorld) difficulty() *components.DifficultyComponent {
	d, _ := findSessionComponent[*components.DifficultyComponent](w.em)
	return d
}

func (w *testWorld) player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	return p
}

func (w *testWorld) playerPos() *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
	return p
}

func (w *testWorld) freeze(frozen bool) {
	f, _ := findSessionComponent[*components.GameFreezeComponent](w.em)
	f.IsFrozen = frozen
}

func (w *testWorld) enemy(x, y float64) ecs.EntityID {
	return entities.NewEnemyEntity(w.em, w.cfg, entities.EnemySpawnParams{
		X:             x,
		Y:             y,
		TargetX:       w.cfg.Screen.Width / 2,
		TargetY:       w.cfg.Screen.Height / 2,
		Speed:         w.cfg.Enemy.BaseSpeed,
		SwayDirection: 1,
	})
}

func getPos(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return p
}

func getVel(em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	v, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	return v
}
