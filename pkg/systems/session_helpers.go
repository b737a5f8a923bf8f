package systems

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/utils"
)

// isGameFrozen 检查会话是否处于冻结状态
// 通过查询 GameFreezeComponent 判断，不依赖全局标志
func isGameFrozen(em *ecs.EntityManager) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.GameFreezeComponent](em) {
		if freeze, ok := ecs.GetComponent[*components.GameFreezeComponent](em, id); ok && freeze.IsFrozen {
			return true
		}
	}
	return false
}

// findSessionComponent 获取会话实体上的某个组件
func findSessionComponent[T any](em *ecs.EntityManager) (T, bool) {
	var zero T
	ids := ecs.GetEntitiesWith2[*components.SessionComponent, T](em)
	if len(ids) == 0 {
		return zero, false
	}
	return ecs.GetComponent[T](em, ids[0])
}

// findPlayer 获取玩家实体及其常用组件
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, *components.PositionComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(ids) == 0 {
		return 0, nil, nil, false
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, ids[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	return ids[0], player, pos, true
}

// entityRect 返回实体的碰撞矩形
func entityRect(pos *components.PositionComponent, col *components.CollisionComponent) utils.Rect {
	return utils.RectFromCenter(pos.X, pos.Y, col.Width, col.Height)
}
