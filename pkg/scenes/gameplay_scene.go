package scenes

import (
	"log"

	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameplayScene 游戏进行中的场景
//
// 每帧采样一次输入交给 GameState，绘制时只读取快照。
// 会话结束后提交分数并请求切换到结束界面。
type GameplayScene struct {
	ctx      *Context
	state    *game.GameState
	renderer *sessionRenderer
	finished bool
}

// NewGameplayScene 创建游戏场景并开始一局新会话
func NewGameplayScene(ctx *Context) *GameplayScene {
	f, err := loadFonts(ctx.Resources)
	if err != nil {
		log.Printf("[GameplayScene] Warning: Failed to load fonts: %v", err)
	}

	return &GameplayScene{
		ctx:      ctx,
		state:    game.NewGameState(ctx.Config, ctx.Rand),
		renderer: newSessionRenderer(ctx.Config.Screen.Width, f),
	}
}

// State 返回当前会话
func (s *GameplayScene) State() *game.GameState {
	return s.state
}

// Update 推进一帧
func (s *GameplayScene) Update(deltaTime float64) {
	if s.finished {
		return
	}

	s.state.Update(deltaTime, utils.ReadFrameInput())

	if s.state.IsGameOver() {
		s.finish()
	}
}

// finish 会话结束：记录会话供结束界面使用并请求切换
func (s *GameplayScene) finish() {
	s.finished = true
	s.ctx.LastSession = s.state
	log.Printf("[GameplayScene] Game over, final score: %d", s.state.FinalScore())
	s.ctx.Scenes.Request(game.SceneGameOver)
}

// Draw 绘制当前帧
func (s *GameplayScene) Draw(screen *ebiten.Image) {
	snap := s.state.Snapshot()
	s.renderer.Draw(screen, snap)
	if snap.Frozen {
		s.renderer.DrawFreezeOverlay(screen)
	}
}
