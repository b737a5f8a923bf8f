// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、打开存储、
// 创建场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "topdown_shooter"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏参数配置文件路径，为空则使用内嵌默认配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig               *config.GameConfig
	sceneManager             *game.SceneManager
	highScores               *game.HighScoreManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	ctx := &scenes.Context{
		Config:     gameConfig,
		Scenes:     game.NewSceneManager(),
		Resources:  game.NewResourceManager(),
		HighScores: game.NewHighScoreManager(openStorage()),
		Rand:       rand.New(rand.NewSource(seed)),
	}
	ctx.Scenes.SetSceneFactory(scenes.NewSceneFactory(ctx))
	ctx.Scenes.Load(game.SceneMainMenu)

	return &App{
		gameConfig:   gameConfig,
		sceneManager: ctx.Scenes,
		highScores:   ctx.HighScores,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 优先从磁盘加载，路径为空时使用内嵌配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.LoadEmbeddedGameConfig()
	}
	log.Printf("[Config] 加载配置文件: %s", path)
	return config.LoadGameConfig(path)
}

// openStorage 打开 gdata 存储
// 失败时返回 nil，最高分只保存在内存中
func openStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (high score will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] ESC pressed, quitting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.screenSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(a.gameConfig.Screen.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenSize()
}

func (a *App) screenSize() (int, int) {
	return int(a.gameConfig.Screen.Width), int(a.gameConfig.Screen.Height)
}

// ScreenSize 返回逻辑屏幕尺寸，供 main 设置窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.screenSize()
}

// TPS 返回配置的逻辑帧率
func (a *App) TPS() int {
	return a.gameConfig.Screen.TPS
}

// HighScore 返回当前最高分
func (a *App) HighScore() int {
	return a.highScores.HighScore()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
