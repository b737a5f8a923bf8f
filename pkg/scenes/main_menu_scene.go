package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// menuFadeSeconds 主菜单文字淡入时长
const menuFadeSeconds = 3.0

// MainMenuScene represents the title screen of the game.
// It shows the decorative background animation, the controls and the current high score.
// ENTER starts a new session; right-click pauses the background animation.
type MainMenuScene struct {
	ctx        *Context
	decoration *MenuDecoration
	fonts      *fonts
	elapsed    float64
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// Parameters:
//   - ctx: The shared scene context.
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
//
// If the fonts fail to load, the scene still runs but draws no text.
func NewMainMenuScene(ctx *Context) *MainMenuScene {
	scene := &MainMenuScene{
		ctx:        ctx,
		decoration: NewMenuDecoration(ctx.Config.Screen.Width, ctx.Config.Screen.Height, ctx.Rand),
	}

	f, err := loadFonts(ctx.Resources)
	if err != nil {
		log.Printf("[MainMenuScene] Warning: Failed to load fonts: %v", err)
	} else {
		scene.fonts = f
	}

	return scene
}

// Update 推进菜单动画并处理输入
func (m *MainMenuScene) Update(deltaTime float64) {
	m.elapsed += deltaTime

	if utils.IsSecondaryJustClicked() {
		m.decoration.TogglePause()
	}
	if utils.IsConfirmJustPressed() {
		m.ctx.Scenes.Request(game.SceneGameplay)
	}

	m.decoration.Update()
}

// Draw renders the main menu.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)

	for _, ball := range m.decoration.Balls {
		fillCircle(screen, ball.X, ball.Y, menuBallRadius, menuBallColor)
	}
	for _, b := range m.decoration.Bullets {
		fillCircle(screen, b.X, b.Y, menuBulletRadius, menuBulletColor)
	}

	w, h := m.ctx.Config.Screen.Width, m.ctx.Config.Screen.Height
	cx, cy := w/2, h/2
	fillPolygon(screen, []float32{
		float32(cx), float32(cy - 30),
		float32(cx + 30), float32(cy + 30),
		float32(cx - 30), float32(cy + 30),
	}, colorPlayer)

	if m.fonts == nil {
		return
	}

	alpha := utils.FadeProgress(m.elapsed, menuFadeSeconds, nil)
	drawCenteredText(screen, "TOP-DOWN Shooting Game", m.fonts.big, cx, h/3, colorGreen, 1, alpha)
	drawCenteredText(screen, "Up/Down/Left/Right - Move | Mouse Left Click - Shoot | ESC - Quit",
		m.fonts.normal, cx, cy+60, colorWhite, 1, alpha)
	drawCenteredText(screen, "Press ENTER to start", m.fonts.normal, cx, cy+120, colorWhite, 1, alpha)

	highScore := 0
	if m.ctx.HighScores != nil {
		highScore = m.ctx.HighScores.HighScore()
	}
	drawCenteredText(screen, fmt.Sprintf("High Score: %d", highScore), m.fonts.normal, cx, h-40, colorYellow, 1, alpha)
}
