package systems

import (
	"testing"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
)

type collisionFixture struct {
	*testWorld
	combo     *ComboSystem
	bullets   *BulletSystem
	enemies   *EnemyBehaviorSystem
	followers *FollowerSystem
	collision *CollisionSystem
}

func newCollisionFixture(t *testing.T) *collisionFixture {
	t.Helper()
	w := newTestWorld(t)
	f := &collisionFixture{testWorld: w}
	f.combo = NewComboSystem(w.em, w.cfg)
	f.bullets = NewBulletSystem(w.em, w.cfg, f.combo)
	f.enemies = NewEnemyBehaviorSystem(w.em, w.cfg, w.rng)
	f.followers = NewFollowerSystem(w.em, w.cfg, w.rng, NewPositionHistory(w.cfg.Follower.HistoryCap))
	f.collision = NewCollisionSystem(w.em, w.cfg, w.rng, f.enemies, f.bullets, f.followers)
	return f
}

func (f *collisionFixture) enemyState(id ecs.EntityID) components.EnemyState {
	e, _ := ecs.GetComponent[*components.EnemyComponent](f.em, id)
	return e.State
}

func TestBulletKillsEveryOverlappedEnemy(t *testing.T) {
	f := newCollisionFixture(t)
	a := f.enemy(100, 100)
	b := f.enemy(110, 100)
	shot := f.combo.OpenShot(1)
	bullet := entities.NewBulletEntity(f.em, f.cfg, 105, 100, 0, 0, shot, 0, false)

	f.collision.ResolveBulletHits()

	if f.em.IsAlive(bullet) {
		t.Error("命中的子弹应被移除")
	}
	if f.enemyState(a) != components.EnemyDying || f.enemyState(b) != components.EnemyDying {
		t.Error("子弹重叠的每个敌人都应进入死亡")
	}
	if f.player().Score != 2*f.cfg.Scoring.KillScore {
		t.Errorf("Score = %d, 期望 %d", f.player().Score, 2*f.cfg.Scoring.KillScore)
	}
	if f.combo.Count() != 1 {
		t.Errorf("命中后 Count = %d, 期望 1", f.combo.Count())
	}
}

func TestBulletOnDyingEnemyRestartsFade(t *testing.T) {
	f := newCollisionFixture(t)
	id := f.enemy(100, 100)
	f.enemies.Die(id, 1)
	e, _ := ecs.GetComponent[*components.EnemyComponent](f.em, id)
	e.DeathFrames = 30
	bullet := entities.NewBulletEntity(f.em, f.cfg, 100, 100, 0, 0, 0, 0, false)

	f.collision.ResolveBulletHits()

	if f.em.IsAlive(bullet) {
		t.Error("与死亡中敌人重叠的子弹同样被移除")
	}
	if e.State != components.EnemyDying || e.DeathFrames != 0 {
		t.Errorf("State = %s, DeathFrames = %d, 期望重新开始淡出", e.State, e.DeathFrames)
	}
	if f.player().Score != f.cfg.Scoring.KillScore {
		t.Errorf("Score = %d, 期望 %d", f.player().Score, f.cfg.Scoring.KillScore)
	}
}

func TestBulletMissLeavesEnemy(t *testing.T) {
	f := newCollisionFixture(t)
	id := f.enemy(100, 100)
	bullet := entities.NewBulletEntity(f.em, f.cfg, 300, 300, 0, 0, 0, 0, false)

	f.collision.ResolveBulletHits()

	if !f.em.IsAlive(bullet) || f.enemyState(id) != components.EnemySeeking {
		t.Error("没有重叠时不应结算")
	}
}

func TestDodgeChanceOne(t *testing.T) {
	f := newCollisionFixture(t)
	f.cfg.Difficulty.DodgeChances = map[int]float64{1: 1}
	id := f.enemy(100, 100)
	entities.NewBulletEntity(f.em, f.cfg, 100, 100, 0, 0, 0, 0, false)

	f.collision.ResolveBulletHits()

	e, _ := ecs.GetComponent[*components.EnemyComponent](f.em, id)
	if e.State != components.EnemyDodging || !e.HasDodgedBefore {
		t.Errorf("State = %s, HasDodgedBefore = %v", e.State, e.HasDodgedBefore)
	}
	if f.player().Score != 0 {
		t.Error("闪避成功不得分")
	}
}

func TestFollowerBulletKillsAtMostOne(t *testing.T) {
	f := newCollisionFixture(t)
	a := f.enemy(100, 100)
	b := f.enemy(104, 100)
	bullet := entities.NewFollowerBulletEntity(f.em, f.cfg, 102, 100, 0, 0)

	f.collision.ResolveFollowerBulletHits()

	if f.em.IsAlive(bullet) {
		t.Error("命中后小跟班子弹应被移除")
	}
	dying := 0
	for _, id := range []ecs.EntityID{a, b} {
		if f.enemyState(id) == components.EnemyDying {
			dying++
		}
	}
	if dying != 1 {
		t.Errorf("小跟班子弹应只击杀 1 个敌人，实际 %d", dying)
	}
	if f.player().Score != f.cfg.Scoring.KillScore {
		t.Errorf("Score = %d, 期望 %d", f.player().Score, f.cfg.Scoring.KillScore)
	}
}

func TestFollowerBulletIgnoresDyingEnemy(t *testing.T) {
	f := newCollisionFixture(t)
	id := f.enemy(100, 100)
	f.enemies.Die(id, 1)
	bullet := entities.NewFollowerBulletEntity(f.em, f.cfg, 100, 100, 0, 0)

	f.collision.ResolveFollowerBulletHits()

	if !f.em.IsAlive(bullet) {
		t.Error("小跟班子弹不应与死亡中的敌人结算")
	}
	if f.player().Score != 0 {
		t.Error("不应得分")
	}
}

func TestPlayerContactEndsSessionOnLastLife(t *testing.T) {
	f := newCollisionFixture(t)
	f.player().Lives = 1
	f.enemy(100, 100)

	if !f.collision.ResolvePlayerContact() {
		t.Fatal("最后一条生命被扣除时应结束")
	}
	if f.player().Lives != 0 || !f.player().Dead {
		t.Errorf("Player = %+v", *f.player())
	}
	if !f.session().GameOver {
		t.Error("GameOver 应为 true")
	}

	// 生命不会降到负数
	f.collision.ResolvePlayerContact()
	if f.player().Lives != 0 {
		t.Errorf("Lives = %d, 期望保持 0", f.player().Lives)
	}
}
