package scenes

import (
	"math"
	"math/rand"
	"testing"
)

const (
	testWidth  = 1024.0
	testHeight = 768.0
)

func newTestDecoration() *MenuDecoration {
	return NewMenuDecoration(testWidth, testHeight, rand.New(rand.NewSource(7)))
}

func TestNewMenuDecoration(t *testing.T) {
	d := newTestDecoration()

	bases := d.basePoints()
	if len(d.Balls) != len(bases) {
		t.Fatalf("小球数量 = %d, 期望 %d", len(d.Balls), len(bases))
	}

	for i, ball := range d.Balls {
		if math.Abs(ball.X-bases[i][0]) > menuBallSpawnRange || math.Abs(ball.Y-bases[i][1]) > menuBallSpawnRange {
			t.Errorf("小球 %d 位置 (%.1f, %.1f) 超出基准点 ±40", i, ball.X, ball.Y)
		}
		speed := math.Hypot(ball.VX, ball.VY)
		if speed < menuBallMinSpeed-1e-9 || speed > menuBallMaxSpeed+1e-9 {
			t.Errorf("小球 %d 初速度 %.2f 不在 [1.8, 3.0]", i, speed)
		}
	}
	if len(d.Bullets) != 0 || d.Paused {
		t.Error("初始状态应无子弹且未暂停")
	}
}

func TestMenuDecorationPaused(t *testing.T) {
	d := newTestDecoration()
	d.TogglePause()
	if !d.Paused {
		t.Fatal("TogglePause 后应暂停")
	}

	before := append([]menuBall(nil), d.Balls...)
	for i := 0; i < menuTurretInterval*2; i++ {
		d.Update()
	}

	for i := range before {
		if d.Balls[i] != before[i] {
			t.Errorf("暂停时小球 %d 不应移动", i)
		}
	}
	if len(d.Bullets) != 0 || d.fireTimer != 0 {
		t.Errorf("暂停时炮台不应计时或开火: bullets=%d timer=%d", len(d.Bullets), d.fireTimer)
	}

	d.TogglePause()
	if d.Paused {
		t.Error("再次 TogglePause 应恢复")
	}
}

func TestMenuDecorationTurretInterval(t *testing.T) {
	d := newTestDecoration()
	d.Balls = nil

	for i := 0; i < menuTurretInterval-1; i++ {
		d.Update()
	}
	if len(d.Bullets) != 0 {
		t.Fatalf("第 %d 帧前不应开火", menuTurretInterval)
	}

	d.Update()
	if len(d.Bullets) != 1 {
		t.Fatalf("第 %d 帧应发射一颗子弹, 得到 %d", menuTurretInterval, len(d.Bullets))
	}

	b := d.Bullets[0]
	if speed := math.Hypot(b.VX, b.VY); math.Abs(speed-menuBulletSpeed) > 1e-9 {
		t.Errorf("子弹速度 = %.2f, 期望 %.1f", speed, menuBulletSpeed)
	}
	// 发射当帧已移动一步
	if dist := math.Hypot(b.X-testWidth/2, b.Y-testHeight/2); math.Abs(dist-menuBulletSpeed) > 1e-9 {
		t.Errorf("子弹应从屏幕中心出发, 距中心 %.2f", dist)
	}
}

func TestMenuBallBouncesOffWall(t *testing.T) {
	d := newTestDecoration()
	d.Balls = []menuBall{{X: 19, Y: 300, VX: -2, VY: 0}}

	d.Update()

	ball := d.Balls[0]
	if ball.X != menuBallRadius {
		t.Errorf("撞左墙后 X = %.2f, 期望 %.0f", ball.X, menuBallRadius)
	}
	if ball.VX <= 0 {
		t.Errorf("撞左墙后 VX 应为正, 得到 %.2f", ball.VX)
	}
}

func TestMenuBallSpeedClamped(t *testing.T) {
	d := newTestDecoration()
	d.Balls = []menuBall{
		{X: 500, Y: 300, VX: 10, VY: 0},
		{X: 300, Y: 300, VX: 0.3, VY: 0},
	}

	d.Update()

	if speed := math.Hypot(d.Balls[0].VX, d.Balls[0].VY); speed > menuBallSpeedCap+1e-9 {
		t.Errorf("速度上限 3.5, 得到 %.2f", speed)
	}
	if speed := math.Hypot(d.Balls[1].VX, d.Balls[1].VY); speed < menuBallSpeedFloor-1e-9 {
		t.Errorf("速度下限 1.2, 得到 %.2f", speed)
	}
}

func TestMenuBulletHitRespawnsBall(t *testing.T) {
	d := newTestDecoration()
	d.Paused = false
	d.Balls = []menuBall{{X: 100, Y: 100}}
	d.Bullets = []menuBullet{{X: 90, Y: 100, VX: 5, VY: 0}}

	d.updateBullets()

	if len(d.Bullets) != 0 {
		t.Errorf("命中的子弹应移除, 剩余 %d", len(d.Bullets))
	}
	if d.Balls[0].X == 100 && d.Balls[0].Y == 100 {
		t.Error("被击中的小球应在基准点附近重生")
	}
	if len(d.Balls) != 1 {
		t.Errorf("小球数量应保持不变, 得到 %d", len(d.Balls))
	}
}

func TestMenuBulletLeavesScreen(t *testing.T) {
	d := newTestDecoration()
	d.Balls = nil
	d.Bullets = []menuBullet{
		{X: 2, Y: 300, VX: -5, VY: 0},
		{X: 500, Y: 300, VX: 5, VY: 0},
	}

	d.updateBullets()

	if len(d.Bullets) != 1 || d.Bullets[0].X != 505 {
		t.Errorf("只应保留屏幕内的子弹, 得到 %+v", d.Bullets)
	}
}
