package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/shooter/pkg/components"
	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	bulletRadius         = 6.0
	enemyRadius          = 18.0
	followerBulletRadius = 5.0
	particleRadius       = 3.0

	heartSpacing = 20.0
	heartTop     = 10.0

	comboOffsetY = 30.0
)

// sessionRenderer 把 game.Snapshot 绘制到屏幕
// 游戏场景与结束界面共用
type sessionRenderer struct {
	screenWidth float64
	fonts       *fonts
}

func newSessionRenderer(screenWidth float64, f *fonts) *sessionRenderer {
	return &sessionRenderer{screenWidth: screenWidth, fonts: f}
}

// Draw 绘制一帧完整画面（不含冻结遮罩）
func (r *sessionRenderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(colorBlack)

	for _, p := range snap.Particles {
		fillCircle(screen, p.X, p.Y, particleRadius, withAlpha(colorRed, p.Alpha))
	}

	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}

	for _, b := range snap.Bullets {
		fillCircle(screen, b.X, b.Y, bulletRadius, colorBullet)
	}

	for _, f := range snap.Followers {
		drawClown(screen, f.X, f.Y, f.Width, 1)
	}

	for _, b := range snap.FollowerBullets {
		fillCircle(screen, b.X, b.Y, followerBulletRadius, colorFollowerShot)
	}

	r.drawPlayer(screen, snap.Player)
	r.drawHearts(screen, snap.Player.Lives, snap.Player.MaxLives)
	r.drawHUD(screen, snap)
	r.drawCombo(screen, snap)
}

// DrawFreezeOverlay 冻结时的半透明遮罩与提示
func (r *sessionRenderer) DrawFreezeOverlay(screen *ebiten.Image) {
	fillScreen(screen, color.RGBA{0, 0, 0, 100})
	if r.fonts == nil {
		return
	}
	drawCenteredText(screen, "PAUSED", r.fonts.big, r.screenWidth/2, 60, colorYellow, 1, 1)
	drawCenteredText(screen, "Right-click to resume", r.fonts.normal, r.screenWidth/2, 110, colorWhite, 1, 1)
}

func (r *sessionRenderer) drawEnemy(screen *ebiten.Image, e game.EnemyView) {
	switch e.State {
	case components.EnemyDodging:
		drawClown(screen, e.X, e.Y, e.Width, e.Alpha)
	default:
		fillCircle(screen, e.X, e.Y, enemyRadius, withAlpha(colorEnemy, e.Alpha))
	}
}

// drawPlayer 玩家为菱形，顶点相对 48x48 碰撞盒左上角为
// (24,0) (48,48) (24,64) (0,48)，按实际尺寸缩放
func (r *sessionRenderer) drawPlayer(screen *ebiten.Image, p game.PlayerView) {
	if p.Width <= 0 {
		return
	}
	clr := colorPlayer
	if p.Dead {
		clr = colorPlayerDead
	}
	fillPolygon(screen, playerPolygon(p.X, p.Y, p.Width, p.Height), clr)
}

// playerPolygon 计算玩家菱形的顶点
func playerPolygon(cx, cy, w, h float64) []float32 {
	left := cx - w/2
	top := cy - h/2
	sx := w / 48
	sy := h / 48
	pts := [][2]float64{{24, 0}, {48, 48}, {24, 64}, {0, 48}}

	out := make([]float32, 0, len(pts)*2)
	for _, pt := range pts {
		out = append(out, float32(left+pt[0]*sx), float32(top+pt[1]*sy))
	}
	return out
}

// heartPositions 计算右上角生命心形的锚点 x 坐标
func heartPositions(screenWidth float64, maxLives int) []float64 {
	startX := screenWidth - (float64(maxLives)*heartSpacing + 10)
	xs := make([]float64, maxLives)
	for i := range xs {
		xs[i] = startX + float64(i)*heartSpacing
	}
	return xs
}

func (r *sessionRenderer) drawHearts(screen *ebiten.Image, lives, maxLives int) {
	for i, x := range heartPositions(r.screenWidth, maxLives) {
		clr := colorHeartEmpty
		if i < lives {
			clr = colorRed
		}
		drawHeart(screen, x, heartTop, clr)
	}
}

// drawHeart 两个小圆加一个倒三角组成心形
func drawHeart(screen *ebiten.Image, x, y float64, clr color.RGBA) {
	fillCircle(screen, x-5, y, 5, clr)
	fillCircle(screen, x+5, y, 5, clr)
	fillPolygon(screen, []float32{
		float32(x - 8), float32(y + 2),
		float32(x + 8), float32(y + 2),
		float32(x), float32(y + 12),
	}, clr)
}

// hudText HUD 左上角文字
func hudText(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d   Level: %d   Trajectories: %d", snap.Player.Score, snap.Level, snap.Trajectories)
}

func (r *sessionRenderer) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	if r.fonts == nil {
		return
	}
	drawText(screen, hudText(snap), r.fonts.normal, 10, 10, colorWhite)
}

// comboColor 按连击数选择弹出文字颜色
func comboColor(count int) color.RGBA {
	switch {
	case count <= 2:
		return colorComboLow
	case count == 3:
		return colorComboMid
	default:
		return colorComboHigh
	}
}

// drawCombo 连击数 >= 2 且仍在显示期内时，在玩家头顶弹出 "X{n}"
// 刚弹出时最大最亮，随进度缩小变淡
func (r *sessionRenderer) drawCombo(screen *ebiten.Image, snap game.Snapshot) {
	if r.fonts == nil || snap.Combo < 2 || snap.ComboProgress <= 0 {
		return
	}
	p := snap.Player
	top := p.Y - p.Height/2
	drawCenteredText(screen, fmt.Sprintf("X%d", snap.Combo), r.fonts.combo,
		p.X, top-comboOffsetY, comboColor(snap.Combo),
		utils.ComboScale(snap.ComboProgress), snap.ComboProgress)
}

// drawClown 小丑脸：闪避中的敌人与小跟班共用
//
// 参数:
//   - size: 图标边长，面部半径取 size*0.38
//   - alpha: 整体透明度
func drawClown(screen *ebiten.Image, cx, cy, size, alpha float64) {
	faceR := size * 0.38
	fillCircle(screen, cx, cy, faceR, withAlpha(colorClownSkin, alpha))

	// 左中右三簇头发
	hairR := faceR * 0.45
	offsets := [][2]float64{{-faceR, -faceR * 0.2}, {0, -faceR * 0.6}, {faceR, -faceR * 0.2}}
	for i, off := range offsets {
		fillCircle(screen, cx+off[0], cy+off[1], hairR, withAlpha(clownHairColors[i%len(clownHairColors)], alpha))
	}

	eyeR := math.Max(2, faceR/6)
	eyeX := faceR * 0.45
	eyeY := cy - faceR*0.15
	fillCircle(screen, cx-eyeX, eyeY, eyeR, withAlpha(colorBlack, alpha))
	fillCircle(screen, cx+eyeX, eyeY, eyeR, withAlpha(colorBlack, alpha))

	fillCircle(screen, cx, cy+faceR*0.05, math.Max(3, faceR/5), withAlpha(colorClownNose, alpha))

	// 嘴：椭圆上半段 20°-160° 的弧
	mouthW := faceR
	mouthH := faceR * 0.55
	mcx := cx
	mcy := cy + faceR*0.15 + mouthH/2
	stroke := float32(math.Max(2, faceR/10))
	mouth := withAlpha(colorClownMouth, alpha)
	const segments = 8
	start, end := 20*math.Pi/180, 160*math.Pi/180
	prevX := mcx + math.Cos(start)*mouthW/2
	prevY := mcy - math.Sin(start)*mouthH/2
	for i := 1; i <= segments; i++ {
		a := start + (end-start)*float64(i)/segments
		x := mcx + math.Cos(a)*mouthW/2
		y := mcy - math.Sin(a)*mouthH/2
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), stroke, mouth, true)
		prevX, prevY = x, y
	}
}
