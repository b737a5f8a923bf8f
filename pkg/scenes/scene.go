package scenes

import (
	"math/rand"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 各场景共享的依赖
//
// 由 app 层创建一次，场景工厂构造场景时传入。
// LastSession 保存最近一局结束时的状态，供结束界面绘制背景画面。
type Context struct {
	Config     *config.GameConfig
	Scenes     *game.SceneManager
	Resources  *game.ResourceManager
	HighScores *game.HighScoreManager
	Rand       *rand.Rand

	LastSession *game.GameState
}

// fonts 场景使用的字体组
type fonts struct {
	normal *text.GoTextFace
	big    *text.GoTextFace
	combo  *text.GoTextFace
}

const (
	normalFontSize = 24.0
	bigFontSize    = 48.0
	comboFontSize  = 32.0
)

// loadFonts 从资源管理器加载场景字体
// 加载失败时返回错误，调用方回退为不绘制文字
func loadFonts(rm *game.ResourceManager) (*fonts, error) {
	normal, err := rm.LoadFont(game.FontRegular, normalFontSize)
	if err != nil {
		return nil, err
	}
	big, err := rm.LoadFont(game.FontBold, bigFontSize)
	if err != nil {
		return nil, err
	}
	combo, err := rm.LoadFont(game.FontBold, comboFontSize)
	if err != nil {
		return nil, err
	}
	return &fonts{normal: normal, big: big, combo: combo}, nil
}

// NewSceneFactory 返回按场景ID构造场景的工厂
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneMainMenu:
			return NewMainMenuScene(ctx)
		case game.SceneGameplay:
			return NewGameplayScene(ctx)
		case game.SceneGameOver:
			return NewGameOverScene(ctx)
		default:
			return nil
		}
	}
}
