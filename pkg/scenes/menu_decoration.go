package scenes

import (
	"math"
	"math/rand"

	"github.com/decker502/shooter/pkg/utils"
)

// 菜单装饰参数（像素/帧）
const (
	menuBallRadius     = 18.0
	menuBallMinSpeed   = 1.8
	menuBallMaxSpeed   = 3.0
	menuBallSpawnRange = 40.0
	menuBallJitter     = 0.18
	menuBallSpeedFloor = 1.2
	menuBallSpeedCap   = 3.5

	menuTurretInterval = 30 // 帧
	menuBulletSpeed    = 5.0
	menuBulletRadius   = 3.0
)

// menuBall 菜单背景中弹跳的小球
type menuBall struct {
	X, Y   float64
	VX, VY float64
}

// menuBullet 中心炮台射出的子弹
type menuBullet struct {
	X, Y   float64
	VX, VY float64
}

// MenuDecoration 主菜单背景动画
//
// 若干小球在屏幕内弹跳并带随机扰动，中心炮台每隔固定帧数向随机方向开火，
// 被击中的小球在随机基准点附近重生。暂停时所有物体静止，开火计时也停止。
type MenuDecoration struct {
	width, height float64
	rng           *rand.Rand

	Balls   []menuBall
	Bullets []menuBullet
	Paused  bool

	fireTimer int
}

// NewMenuDecoration 创建菜单装饰，每个基准点生成一个小球
func NewMenuDecoration(width, height float64, rng *rand.Rand) *MenuDecoration {
	d := &MenuDecoration{width: width, height: height, rng: rng}
	for _, base := range d.basePoints() {
		d.Balls = append(d.Balls, d.newBall(base[0], base[1]))
	}
	return d
}

// basePoints 小球出生的基准点
func (d *MenuDecoration) basePoints() [][2]float64 {
	w, h := d.width, d.height
	return [][2]float64{
		{150, 100},
		{w - 150, 120},
		{w/2 - 200, h - 100},
		{w/2 + 200, h - 120},
		{w / 2, h/2 + 150},
	}
}

// newBall 在基准点 ±40 范围内生成一个随机方向的小球
func (d *MenuDecoration) newBall(baseX, baseY float64) menuBall {
	x := baseX + d.uniform(-menuBallSpawnRange, menuBallSpawnRange)
	y := baseY + d.uniform(-menuBallSpawnRange, menuBallSpawnRange)
	speed := d.uniform(menuBallMinSpeed, menuBallMaxSpeed)
	vx, vy := utils.FromAngle(d.uniform(0, 2*math.Pi), speed)
	return menuBall{X: x, Y: y, VX: vx, VY: vy}
}

// respawnBall 在随机基准点重生小球
func (d *MenuDecoration) respawnBall() menuBall {
	bases := d.basePoints()
	base := bases[d.rng.Intn(len(bases))]
	return d.newBall(base[0], base[1])
}

func (d *MenuDecoration) uniform(min, max float64) float64 {
	return min + d.rng.Float64()*(max-min)
}

// TogglePause 切换暂停
func (d *MenuDecoration) TogglePause() {
	d.Paused = !d.Paused
}

// Update 推进一帧
func (d *MenuDecoration) Update() {
	if d.Paused {
		return
	}

	for i := range d.Balls {
		d.moveBall(&d.Balls[i])
	}

	d.fireTimer++
	if d.fireTimer >= menuTurretInterval {
		d.fireTimer = 0
		vx, vy := utils.FromAngle(d.uniform(0, 2*math.Pi), menuBulletSpeed)
		d.Bullets = append(d.Bullets, menuBullet{X: d.width / 2, Y: d.height / 2, VX: vx, VY: vy})
	}

	d.updateBullets()
}

// moveBall 移动并在墙上反弹，然后施加速度扰动
func (d *MenuDecoration) moveBall(b *menuBall) {
	b.X += b.VX
	b.Y += b.VY

	if b.X-menuBallRadius < 0 {
		b.X = menuBallRadius
		b.VX = -b.VX
	} else if b.X+menuBallRadius > d.width {
		b.X = d.width - menuBallRadius
		b.VX = -b.VX
	}
	if b.Y-menuBallRadius < 0 {
		b.Y = menuBallRadius
		b.VY = -b.VY
	} else if b.Y+menuBallRadius > d.height {
		b.Y = d.height - menuBallRadius
		b.VY = -b.VY
	}

	b.VX += d.uniform(-menuBallJitter, menuBallJitter)
	b.VY += d.uniform(-menuBallJitter, menuBallJitter)

	// 速度限制在 [1.2, 3.5]，静止的小球保持静止
	speed := math.Hypot(b.VX, b.VY)
	switch {
	case speed > menuBallSpeedCap:
		b.VX, b.VY = b.VX/speed*menuBallSpeedCap, b.VY/speed*menuBallSpeedCap
	case speed > 0 && speed < menuBallSpeedFloor:
		b.VX, b.VY = b.VX/speed*menuBallSpeedFloor, b.VY/speed*menuBallSpeedFloor
	}
}

// updateBullets 移动子弹，移除出界子弹，处理子弹与小球的碰撞
// 一颗子弹最多击中一个小球
func (d *MenuDecoration) updateBullets() {
	kept := d.Bullets[:0]
	for _, bullet := range d.Bullets {
		bullet.X += bullet.VX
		bullet.Y += bullet.VY

		if bullet.X < 0 || bullet.X > d.width || bullet.Y < 0 || bullet.Y > d.height {
			continue
		}

		hit := false
		for i, ball := range d.Balls {
			if utils.Distance(ball.X, ball.Y, bullet.X, bullet.Y) < menuBallRadius+menuBulletRadius {
				d.Balls[i] = d.respawnBall()
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, bullet)
		}
	}
	d.Bullets = kept
}
