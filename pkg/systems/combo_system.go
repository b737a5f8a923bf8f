package systems

import (
	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/ecs"
)

// ComboSystem 连击追踪
//
// 一次开火的所有子弹视为一个批次。批次内每颗子弹结算（命中或出界）时递减 Pending，
// 归零时做一次连击判定：有命中则连击 +1 并重启显示计时，否则连击清零。
type ComboSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewComboSystem 创建连击系统
func NewComboSystem(em *ecs.EntityManager, cfg *config.GameConfig) *ComboSystem {
	return &ComboSystem{
		entityManager: em,
		config:        cfg,
	}
}

func (s *ComboSystem) combo() (*components.ComboComponent, bool) {
	return findSessionComponent[*components.ComboComponent](s.entityManager)
}

// OpenShot 为一次开火建立批次记录
//
// 参数:
//   - bulletCount: 本次开火发射的子弹数
//
// 返回:
//   - uint64: 批次ID，会话不存在或子弹数为 0 时返回 0
func (s *ComboSystem) OpenShot(bulletCount int) uint64 {
	combo, ok := s.combo()
	if !ok || bulletCount <= 0 {
		return 0
	}
	id := combo.NextShotID
	combo.NextShotID++
	combo.Shots[id] = &components.ShotRecord{Pending: bulletCount}
	return id
}

// NotifyBulletResolved 通知某颗子弹已结算
// 批次不存在（ID 为 0 或已删除）时为空操作
func (s *ComboSystem) NotifyBulletResolved(shotID uint64, hit bool) {
	if shotID == 0 {
		return
	}
	combo, ok := s.combo()
	if !ok {
		return
	}
	shot, exists := combo.Shots[shotID]
	if !exists {
		return
	}

	if hit {
		shot.AnyHit = true
	}
	shot.Pending--
	if shot.Pending > 0 {
		return
	}

	if shot.AnyHit {
		combo.Count++
		combo.DisplayTimer = s.config.Combo.DisplayFrames
	} else {
		combo.Count = 0
		combo.DisplayTimer = 0
	}
	delete(combo.Shots, shotID)
}

// Tick 推进连击显示计时器
func (s *ComboSystem) Tick() {
	if combo, ok := s.combo(); ok && combo.DisplayTimer > 0 {
		combo.DisplayTimer--
	}
}

// Count 当前连击数
func (s *ComboSystem) Count() int {
	if combo, ok := s.combo(); ok {
		return combo.Count
	}
	return 0
}

// Progress 连击弹出动画进度，1 为刚触发，0 为已结束
func (s *ComboSystem) Progress() float64 {
	combo, ok := s.combo()
	if !ok || s.config.Combo.DisplayFrames <= 0 {
		return 0
	}
	return float64(combo.DisplayTimer) / float64(s.config.Combo.DisplayFrames)
}

// PendingShots 尚未结算完毕的批次数
func (s *ComboSystem) PendingShots() int {
	if combo, ok := s.combo(); ok {
		return len(combo.Shots)
	}
	return 0
}
