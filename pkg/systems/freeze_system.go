package systems

import (
	"log"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
)

// FreezeSystem 全局冻结控制
//
// 进入冻结：缓存并清零所有敌人和子弹的速度，生成计时点重置为当前时刻。
// 退出冻结：原样恢复缓存的速度，不重新计算。
// 小跟班和小跟班子弹每帧直接查询冻结状态，不需要缓存。
type FreezeSystem struct {
	entityManager *ecs.EntityManager
	spawner       *EnemySpawnSystem
}

// NewFreezeSystem 创建冻结系统
func NewFreezeSystem(em *ecs.EntityManager, spawner *EnemySpawnSystem) *FreezeSystem {
	return &FreezeSystem{
		entityManager: em,
		spawner:       spawner,
	}
}

// IsFrozen 是否处于冻结状态
func (s *FreezeSystem) IsFrozen() bool {
	return isGameFrozen(s.entityManager)
}

// Toggle 切换冻结状态
func (s *FreezeSystem) Toggle() {
	if s.IsFrozen() {
		s.Exit()
	} else {
		s.Enter()
	}
	log.Printf("[FreezeSystem] Frozen -> %v", s.IsFrozen())
}

// Enter 进入冻结
func (s *FreezeSystem) Enter() {
	freeze, ok := findSessionComponent[*components.GameFreezeComponent](s.entityManager)
	if !ok || freeze.IsFrozen {
		return
	}
	freeze.IsFrozen = true

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.VelocityComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		enemy.StoredVX, enemy.StoredVY = vel.VX, vel.VY
		vel.VX, vel.VY = 0, 0
		enemy.Frozen = true
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.VelocityComponent](s.entityManager) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if bullet.Frozen {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		bullet.StoredVX, bullet.StoredVY = vel.VX, vel.VY
		vel.VX, vel.VY = 0, 0
		bullet.Frozen = true
	}

	if s.spawner != nil {
		s.spawner.ResetTimer()
	}
}

// Exit 退出冻结
func (s *FreezeSystem) Exit() {
	freeze, ok := findSessionComponent[*components.GameFreezeComponent](s.entityManager)
	if !ok || !freeze.IsFrozen {
		return
	}
	freeze.IsFrozen = false

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.VelocityComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !enemy.Frozen {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.VX, vel.VY = enemy.StoredVX, enemy.StoredVY
		enemy.Frozen = false
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.VelocityComponent](s.entityManager) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if !bullet.Frozen {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.VX, vel.VY = bullet.StoredVX, bullet.StoredVY
		bullet.Frozen = false
	}
}
