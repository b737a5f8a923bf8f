package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调色板
var (
	colorBlack        = color.RGBA{0, 0, 0, 255}
	colorWhite        = color.RGBA{255, 255, 255, 255}
	colorRed          = color.RGBA{255, 0, 0, 255}
	colorGreen        = color.RGBA{0, 255, 0, 255}
	colorYellow       = color.RGBA{255, 255, 0, 255}
	colorPlayer       = color.RGBA{30, 144, 255, 255}
	colorPlayerDead   = color.RGBA{0, 0, 100, 255}
	colorBullet       = color.RGBA{255, 255, 0, 255}
	colorEnemy        = color.RGBA{255, 0, 0, 255}
	colorFollowerShot = color.RGBA{100, 200, 255, 255}
	colorHeartEmpty   = color.RGBA{50, 50, 50, 255}
	menuBallColor     = color.RGBA{100, 0, 0, 255}
	menuBulletColor   = color.RGBA{255, 255, 100, 255}

	colorComboLow  = color.RGBA{255, 215, 0, 255}
	colorComboMid  = color.RGBA{255, 140, 0, 255}
	colorComboHigh = color.RGBA{220, 20, 60, 255}

	colorClownSkin  = color.RGBA{255, 224, 189, 255}
	colorClownNose  = color.RGBA{220, 20, 60, 255}
	colorClownMouth = color.RGBA{139, 0, 0, 255}
	clownHairColors = []color.RGBA{
		{220, 20, 60, 255},
		{30, 144, 255, 255},
		{34, 139, 34, 255},
	}
)

// whitePixel DrawTriangles 使用的 1x1 纯白源图
// 取 3x3 图像的中心像素，避免采样到边缘
var whitePixel *ebiten.Image

func whiteSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// withAlpha 按透明度缩放颜色（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// fillPolygon 填充任意简单多边形
//
// 参数:
//   - dst: 目标图像
//   - points: 顶点序列，按 (x, y) 成对排列
//   - clr: 填充颜色
func fillPolygon(dst *ebiten.Image, points []float32, clr color.Color) {
	if len(points) < 6 {
		return
	}

	var path vector.Path
	path.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		path.LineTo(points[i], points[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSource(), op)
}

// fillCircle 填充圆
func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// fillScreen 用半透明颜色覆盖整个屏幕
func fillScreen(dst *ebiten.Image, clr color.Color) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
}

// drawText 在左上角锚点处绘制文字
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字
//
// 参数:
//   - scale: 缩放系数，以文字中心为原点缩放
//   - alpha: 额外透明度系数 [0, 1]
func drawCenteredText(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color, scale, alpha float64) {
	if face == nil || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}
