package systems

import (
	"math"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// BulletSystem 玩家子弹的发射、移动与墙壁反弹
type BulletSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	combo         *ComboSystem
}

// NewBulletSystem 创建子弹系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - combo: 连击系统，子弹结算时通知
func NewBulletSystem(em *ecs.EntityManager, cfg *config.GameConfig, combo *ComboSystem) *BulletSystem {
	return &BulletSystem{
		entityManager: em,
		config:        cfg,
		combo:         combo,
	}
}

// FanAngles 计算多弹道开火的各弹道角度
//
//   - 1 条：瞄准方向
//   - 2 条：瞄准方向与正后方
//   - 3 条及以上：在瞄准方向两侧均匀展开，总展开角 π/4
func FanAngles(aim float64, trajectories int) []float64 {
	switch {
	case trajectories <= 1:
		return []float64{aim}
	case trajectories == 2:
		return []float64{aim, aim + math.Pi}
	}

	const spread = math.Pi / 4
	step := spread / float64(trajectories-1)
	center := float64(trajectories-1) / 2
	angles := make([]float64, trajectories)
	for i := range angles {
		angles[i] = aim + (float64(i)-center)*step
	}
	return angles
}

// LiveBullets 当前存活的玩家子弹数
func (s *BulletSystem) LiveBullets() int {
	return len(ecs.GetEntitiesWith1[*components.BulletComponent](s.entityManager))
}

// Fire 从玩家中心朝目标点开火
//
// 弹道数取当前难度，反弹次数取累计死亡次数。
// 存活子弹数加上本次子弹数超过上限（每条弹道 Limit 颗）时整次开火被丢弃，不建立批次。
//
// 返回:
//   - bool: 是否成功开火
func (s *BulletSystem) Fire(targetX, targetY float64) bool {
	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}
	diff, ok := findSessionComponent[*components.DifficultyComponent](s.entityManager)
	if !ok {
		return false
	}
	session, ok := findSessionComponent[*components.SessionComponent](s.entityManager)
	if !ok {
		return false
	}

	angles := FanAngles(math.Atan2(targetY-playerPos.Y, targetX-playerPos.X), diff.Trajectories)
	if s.LiveBullets()+len(angles) > s.config.Bullet.Limit*diff.Trajectories {
		return false
	}

	frozen := isGameFrozen(s.entityManager)
	shotID := s.combo.OpenShot(len(angles))
	for _, angle := range angles {
		vx, vy := utils.FromAngle(angle, s.config.Bullet.Speed)
		entities.NewBulletEntity(s.entityManager, s.config, playerPos.X, playerPos.Y, vx, vy,
			shotID, session.DeathCount, frozen)
	}
	return true
}

// Update 移动所有子弹并处理墙壁反弹与出界
//
// 还有反弹次数时：越过左右边界反转 VX，越过上下边界反转 VY，位置夹回边界。
// 同一帧内同时越过横纵两个边界只扣一次反弹次数。
// 没有反弹次数时：子弹完全离开游戏区域即移除，并以未命中通知连击系统。
func (s *BulletSystem) Update() {
	w, h := s.config.Screen.Width, s.config.Screen.Height
	screen := utils.Rect{W: w, H: h}

	ids := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if bullet.Frozen {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		halfW, halfH := s.config.Bullet.Size/2, s.config.Bullet.Size/2
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			halfW, halfH = col.Width/2, col.Height/2
		}

		vx, vy := vel.VX, vel.VY
		pos.X += vx
		pos.Y += vy

		if bullet.BouncesRemaining > 0 {
			bounced := false
			if pos.X-halfW < 0 {
				pos.X = halfW
				vel.VX = -vx
				bullet.BouncesRemaining--
				bounced = true
			} else if pos.X+halfW > w {
				pos.X = w - halfW
				vel.VX = -vx
				bullet.BouncesRemaining--
				bounced = true
			}

			if pos.Y-halfH < 0 {
				pos.Y = halfH
				vel.VY = -vy
				if !bounced {
					bullet.BouncesRemaining--
				}
			} else if pos.Y+halfH > h {
				pos.Y = h - halfH
				vel.VY = -vy
				if !bounced {
					bullet.BouncesRemaining--
				}
			}
			continue
		}

		if !utils.RectFromCenter(pos.X, pos.Y, halfW*2, halfH*2).Intersects(screen) {
			s.combo.NotifyBulletResolved(bullet.ShotID, false)
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Remove 移除一颗子弹并通知连击系统
func (s *BulletSystem) Remove(id ecs.EntityID, hit bool) {
	if !s.entityManager.IsAlive(id) {
		return
	}
	if bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id); ok {
		s.combo.NotifyBulletResolved(bullet.ShotID, hit)
	}
	s.entityManager.DestroyEntity(id)
}
