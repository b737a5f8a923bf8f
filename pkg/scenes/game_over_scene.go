package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const gameOverFadeSeconds = 0.8

// GameOverScene 结束界面
//
// 背景保留最后一帧游戏画面，叠加半透明遮罩和最终得分。
// 进入时提交一次最高分；回车、R 键或右键开始新的一局。
type GameOverScene struct {
	ctx      *Context
	renderer *sessionRenderer
	fonts    *fonts

	snapshot  game.Snapshot
	score     int
	newRecord bool
	elapsed   float64
}

// NewGameOverScene 创建结束界面
// ctx.LastSession 为空时按 0 分处理
func NewGameOverScene(ctx *Context) *GameOverScene {
	f, err := loadFonts(ctx.Resources)
	if err != nil {
		log.Printf("[GameOverScene] Warning: Failed to load fonts: %v", err)
	}

	scene := &GameOverScene{
		ctx:      ctx,
		renderer: newSessionRenderer(ctx.Config.Screen.Width, f),
		fonts:    f,
	}

	if ctx.LastSession != nil {
		scene.snapshot = ctx.LastSession.Snapshot()
		scene.score = ctx.LastSession.FinalScore()
	}

	if ctx.HighScores != nil {
		scene.newRecord = ctx.HighScores.Submit(scene.score)
	}
	if scene.newRecord {
		log.Printf("[GameOverScene] New high score: %d", scene.score)
	}

	return scene
}

// Score 本局最终得分
func (s *GameOverScene) Score() int {
	return s.score
}

// Update 等待重新开始
func (s *GameOverScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if utils.IsConfirmJustPressed() || utils.IsSecondaryJustClicked() || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.ctx.Scenes.Request(game.SceneGameplay)
	}
}

// Draw 绘制最后一帧画面和结束信息
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.snapshot)
	fillScreen(screen, color.RGBA{0, 0, 0, 180})

	if s.fonts == nil {
		return
	}

	w, h := s.ctx.Config.Screen.Width, s.ctx.Config.Screen.Height
	alpha := utils.FadeProgress(s.elapsed, gameOverFadeSeconds, nil)
	drawCenteredText(screen, fmt.Sprintf("Game Over! Score: %d", s.score), s.fonts.big, w/2, h/2-40, colorRed, 1, alpha)
	drawCenteredText(screen, "Press R to restart or ESC to quit", s.fonts.normal, w/2, h/2+30, colorWhite, 1, alpha)
	if s.newRecord {
		drawCenteredText(screen, "New High Score!", s.fonts.normal, w/2, h/2+80, colorYellow, 1, alpha)
	}
}
