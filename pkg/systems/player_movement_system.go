package systems

import (
	"math"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/types"
	"github.com/decker502/shooter/pkg/utils"
)

// PlayerMovementSystem 处理玩家走位
//
// 按住任意方向键时速度逐帧加速到上限，松开后立即回到基础速度。
// 移动后位置被夹在游戏区域内，并把玩家中心追加到位置历史。
// 冻结不影响玩家移动。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	history       *PositionHistory
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig, history *PositionHistory) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		config:        cfg,
		history:       history,
	}
}

// Update 根据本帧的方向意图移动玩家
func (s *PlayerMovementSystem) Update(input types.FrameInput) {
	id, player, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	dx, dy := input.MoveVector()
	if dx != 0 || dy != 0 {
		player.CurrentSpeed = math.Min(player.MaxSpeed, player.CurrentSpeed+player.AccelPerFrame)
		ux, uy := utils.Normalize(dx, dy)
		dx = ux * player.CurrentSpeed
		dy = uy * player.CurrentSpeed
		player.Angle = math.Atan2(dy, dx)
	} else {
		player.CurrentSpeed = player.BaseSpeed
	}

	pos.X += dx
	pos.Y += dy

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX, vel.VY = dx, dy
	}

	// 边界检测
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		bounds := utils.Rect{W: s.config.Screen.Width, H: s.config.Screen.Height}
		pos.X, pos.Y = entityRect(pos, col).ClampInside(bounds).Center()
	}

	if s.history != nil {
		s.history.Append(pos.X, pos.Y)
	}
}
