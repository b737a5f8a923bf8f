package systems

import (
	"testing"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
)

func TestLifetimeSystemExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewLifetimeSystem(em)

	short := em.CreateEntity()
	ecs.AddComponent(em, short, &components.LifetimeComponent{MaxFrames: 2, RemainingFrames: 2})
	long := em.CreateEntity()
	ecs.AddComponent(em, long, &components.LifetimeComponent{MaxFrames: 5, RemainingFrames: 5})

	sys.Update()
	if !em.IsAlive(short) {
		t.Fatal("剩余 1 帧时不应删除")
	}

	sys.Update()
	if em.IsAlive(short) {
		t.Error("寿命耗尽后应删除")
	}
	if !em.IsAlive(long) {
		t.Error("未到期的实体不应删除")
	}
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, short)
	if !lifetime.IsExpired {
		t.Error("IsExpired 应为 true")
	}
}
