package config

import (
	"fmt"
	"os"

	"github.com/decker502/shooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内嵌默认配置文件路径
const DefaultGameConfigPath = "data/game_config.yaml"

// MaxFollowerSlots 小跟班序号只有 0..2 三个槽位
const MaxFollowerSlots = 3

// GameConfig 射击游戏核心参数配置
//
// 所有可调参数集中在此，按功能分组。
// 帧相关的参数（加速度、持续时长、计时器）以 60 TPS 的帧为单位，
// 生成间隔以毫秒为单位（由会话时钟驱动）。
//
// 配置文件位置: data/game_config.yaml
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Follower   FollowerConfig   `yaml:"follower"`
	Combo      ComboConfig      `yaml:"combo"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Particles  ParticleConfig   `yaml:"particles"`
}

// ScreenConfig 游戏区域配置
type ScreenConfig struct {
	Width  float64 `yaml:"width"`  // 游戏区域宽度（像素）
	Height float64 `yaml:"height"` // 游戏区域高度（像素）
	TPS    int     `yaml:"tps"`    // 每秒逻辑帧数
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	BaseSpeed      float64 `yaml:"baseSpeed"`      // 基础速度（像素/帧）
	MaxSpeedFactor float64 `yaml:"maxSpeedFactor"` // 最大速度 = 基础速度 × 此系数
	AccelPerFrame  float64 `yaml:"accelPerFrame"`  // 连续移动时每帧增加的速度
	Size           float64 `yaml:"size"`           // 碰撞盒边长
	InitialLives   int     `yaml:"initialLives"`   // 初始生命数
}

// BulletConfig 玩家子弹配置
type BulletConfig struct {
	Speed float64 `yaml:"speed"` // 飞行速度（像素/帧）
	Size  float64 `yaml:"size"`  // 碰撞盒边长
	Limit int     `yaml:"limit"` // 每条弹道允许同时存在的子弹数
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	BaseSpeed      float64 `yaml:"baseSpeed"`      // 1 级难度下的追踪速度
	Size           float64 `yaml:"size"`           // 碰撞盒边长
	SpawnOffset    float64 `yaml:"spawnOffset"`    // 出生点在屏幕外的距离
	SpawnJitter    int     `yaml:"spawnJitter"`    // 出生点随机扰动范围（±像素）
	DodgeSpeed     float64 `yaml:"dodgeSpeed"`     // 闪避移动速度
	DodgeFrames    int     `yaml:"dodgeFrames"`    // 闪避持续帧数
	SwaySpeed      float64 `yaml:"swaySpeed"`      // 摇摆速度基数（乘以随机运动强度）
	SwayFlipChance float64 `yaml:"swayFlipChance"` // 每帧重新选择摇摆方向的概率
	MotionBase     float64 `yaml:"motionBase"`     // 2 级难度时的随机运动强度
	MotionPerLevel float64 `yaml:"motionPerLevel"` // 每升一级增加的随机运动强度
	MotionMinLevel int     `yaml:"motionMinLevel"` // 开始出现随机运动的难度等级
}

// DifficultyConfig 难度曲线配置
type DifficultyConfig struct {
	ScoreStep            int             `yaml:"scoreStep"`            // 每多少分升一级
	BaseSpawnIntervalMs  float64         `yaml:"baseSpawnIntervalMs"`  // 1 级生成间隔（毫秒）
	FloorSpawnIntervalMs float64         `yaml:"floorSpawnIntervalMs"` // 生成间隔下限（毫秒）
	SpawnIntervalStepMs  float64         `yaml:"spawnIntervalStepMs"`  // 每级缩短的生成间隔（毫秒）
	EnemySpeedStep       float64         `yaml:"enemySpeedStep"`       // 每级增加的敌人速度
	SpawnBurst           int             `yaml:"spawnBurst"`           // 每次生成的敌人数量（固定）
	LevelsPerTrajectory  int             `yaml:"levelsPerTrajectory"`  // 每升多少级增加一条弹道
	DodgeChances         map[int]float64 `yaml:"dodgeChances"`         // 难度等级 -> 闪避概率，未列出的等级为 0
	DeathFrames          int             `yaml:"deathFrames"`          // 1 级死亡淡出帧数
	DeathFramesStep      int             `yaml:"deathFramesStep"`      // 每级缩短的淡出帧数
	MinDeathFrames       int             `yaml:"minDeathFrames"`       // 淡出帧数下限
}

// FollowerConfig 小跟班配置
type FollowerConfig struct {
	MaxCount      int     `yaml:"maxCount"`      // 同时存在的小跟班上限
	Spacing       float64 `yaml:"spacing"`       // 每个小跟班的跟随间距（像素）
	HistoryStride float64 `yaml:"historyStride"` // 跟随间距换算为历史步数的除数
	HistoryCap    int     `yaml:"historyCap"`    // 玩家位置历史最大长度
	MoveSpeed     float64 `yaml:"moveSpeed"`     // 追赶速度上限
	FireInterval  int     `yaml:"fireInterval"`  // 发射间隔（帧）
	BulletSpeed   float64 `yaml:"bulletSpeed"`   // 小跟班子弹速度
	BulletSize    float64 `yaml:"bulletSize"`    // 小跟班子弹碰撞盒边长
	Size          float64 `yaml:"size"`          // 小跟班碰撞盒边长
}

// ComboConfig 连击配置
type ComboConfig struct {
	DisplayFrames int `yaml:"displayFrames"` // 连击弹出显示时长（帧）
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	KillScore int `yaml:"killScore"` // 每个击杀的得分
}

// ParticleConfig 死亡血溅粒子配置
type ParticleConfig struct {
	Count       int     `yaml:"count"`       // 每次击杀生成的粒子数
	MinSpeed    float64 `yaml:"minSpeed"`    // 最小初速度
	MaxSpeed    float64 `yaml:"maxSpeed"`    // 最大初速度
	MinLifetime int     `yaml:"minLifetime"` // 最短寿命（帧）
	MaxLifetime int     `yaml:"maxLifetime"` // 最长寿命（帧）
	FallFactor  float64 `yaml:"fallFactor"`  // 每帧纵向速度乘数
	Size        float64 `yaml:"size"`        // 粒子直径
}

// DefaultGameConfig 返回与原版数值一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 1024, Height: 768, TPS: 60},
		Player: PlayerConfig{
			BaseSpeed:      5,
			MaxSpeedFactor: 2.0,
			AccelPerFrame:  0.08,
			Size:           48,
			InitialLives:   3,
		},
		Bullet: BulletConfig{Speed: 10, Size: 12, Limit: 10},
		Enemy: EnemyConfig{
			BaseSpeed:      2,
			Size:           36,
			SpawnOffset:    36,
			SpawnJitter:    30,
			DodgeSpeed:     8,
			DodgeFrames:    18,
			SwaySpeed:      1.5,
			SwayFlipChance: 0.1,
			MotionBase:     0.5,
			MotionPerLevel: 0.3,
			MotionMinLevel: 2,
		},
		Difficulty: DifficultyConfig{
			ScoreStep:            50,
			BaseSpawnIntervalMs:  2000,
			FloorSpawnIntervalMs: 800,
			SpawnIntervalStepMs:  200,
			EnemySpeedStep:       0.5,
			SpawnBurst:           1,
			LevelsPerTrajectory:  2,
			DodgeChances:         map[int]float64{1: 0.4, 2: 0.2, 3: 0.1},
			DeathFrames:          60,
			DeathFramesStep:      10,
			MinDeathFrames:       20,
		},
		Follower: FollowerConfig{
			MaxCount:      3,
			Spacing:       60,
			HistoryStride: 3,
			HistoryCap:    1000,
			MoveSpeed:     6,
			FireInterval:  60,
			BulletSpeed:   5,
			BulletSize:    10,
			Size:          36,
		},
		Combo:   ComboConfig{DisplayFrames: 60},
		Scoring: ScoringConfig{KillScore: 10},
		Particles: ParticleConfig{
			Count:       20,
			MinSpeed:    2,
			MaxSpeed:    8,
			MinLifetime: 20,
			MaxLifetime: 40,
			FallFactor:  1.05,
			Size:        6,
		},
	}
}

// ParseGameConfig 从 YAML 数据解析游戏配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只覆盖部分参数。
// dodgeChances 出现时整表替换默认值，不做逐项合并。
//
// 参数:
//   - data: YAML 文本
//
// 返回:
//   - *GameConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	// yaml.v3 会把映射合并进已有的 map，闪避表需要整体替换
	defaultDodge := cfg.Difficulty.DodgeChances
	cfg.Difficulty.DodgeChances = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if cfg.Difficulty.DodgeChances == nil {
		cfg.Difficulty.DodgeChances = defaultDodge
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载游戏配置
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// LoadEmbeddedGameConfig 从内嵌资源加载默认游戏配置
// 调用前必须先执行 embedded.Init()
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 检查项：
//   - 尺寸、速度、数量类参数必须为正
//   - 生成间隔下限不能大于基础间隔
//   - 闪避概率必须在 [0, 1] 区间内
//   - 粒子速度、寿命区间的 min 不能大于 max
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TPS <= 0 {
		return fmt.Errorf("screen tps must be positive, got %d", c.Screen.TPS)
	}

	if c.Player.BaseSpeed <= 0 {
		return fmt.Errorf("player baseSpeed must be positive, got %.2f", c.Player.BaseSpeed)
	}
	if c.Player.MaxSpeedFactor < 1 {
		return fmt.Errorf("player maxSpeedFactor must be >= 1, got %.2f", c.Player.MaxSpeedFactor)
	}
	if c.Player.InitialLives <= 0 {
		return fmt.Errorf("player initialLives must be positive, got %d", c.Player.InitialLives)
	}

	if c.Bullet.Speed <= 0 || c.Bullet.Limit <= 0 {
		return fmt.Errorf("bullet speed and limit must be positive, got speed=%.2f limit=%d", c.Bullet.Speed, c.Bullet.Limit)
	}

	if c.Enemy.BaseSpeed <= 0 {
		return fmt.Errorf("enemy baseSpeed must be positive, got %.2f", c.Enemy.BaseSpeed)
	}
	if c.Enemy.DodgeFrames < 0 || c.Enemy.SpawnJitter < 0 {
		return fmt.Errorf("enemy dodgeFrames and spawnJitter cannot be negative")
	}
	if c.Enemy.SwayFlipChance < 0 || c.Enemy.SwayFlipChance > 1 {
		return fmt.Errorf("enemy swayFlipChance must be in [0, 1], got %.2f", c.Enemy.SwayFlipChance)
	}

	d := c.Difficulty
	if d.ScoreStep <= 0 {
		return fmt.Errorf("difficulty scoreStep must be positive, got %d", d.ScoreStep)
	}
	if d.FloorSpawnIntervalMs > d.BaseSpawnIntervalMs {
		return fmt.Errorf("difficulty floorSpawnIntervalMs(%.0f) > baseSpawnIntervalMs(%.0f)",
			d.FloorSpawnIntervalMs, d.BaseSpawnIntervalMs)
	}
	if d.SpawnIntervalStepMs < 0 || d.EnemySpeedStep < 0 {
		return fmt.Errorf("difficulty steps cannot be negative")
	}
	if d.SpawnBurst <= 0 {
		return fmt.Errorf("difficulty spawnBurst must be positive, got %d", d.SpawnBurst)
	}
	if d.LevelsPerTrajectory <= 0 {
		return fmt.Errorf("difficulty levelsPerTrajectory must be positive, got %d", d.LevelsPerTrajectory)
	}
	for level, chance := range d.DodgeChances {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("dodge chance for level %d must be in [0, 1], got %.2f", level, chance)
		}
	}
	if d.MinDeathFrames <= 0 || d.DeathFrames < d.MinDeathFrames {
		return fmt.Errorf("difficulty death frames invalid: deathFrames=%d minDeathFrames=%d",
			d.DeathFrames, d.MinDeathFrames)
	}

	f := c.Follower
	if f.MaxCount < 0 {
		return fmt.Errorf("follower maxCount cannot be negative, got %d", f.MaxCount)
	}
	if f.MaxCount > MaxFollowerSlots {
		return fmt.Errorf("follower maxCount cannot exceed %d, got %d", MaxFollowerSlots, f.MaxCount)
	}
	if f.HistoryStride <= 0 || f.HistoryCap <= 0 {
		return fmt.Errorf("follower historyStride and historyCap must be positive")
	}
	if f.FireInterval <= 0 {
		return fmt.Errorf("follower fireInterval must be positive, got %d", f.FireInterval)
	}

	if c.Combo.DisplayFrames <= 0 {
		return fmt.Errorf("combo displayFrames must be positive, got %d", c.Combo.DisplayFrames)
	}
	if c.Scoring.KillScore < 0 {
		return fmt.Errorf("scoring killScore cannot be negative, got %d", c.Scoring.KillScore)
	}

	p := c.Particles
	if p.MinSpeed > p.MaxSpeed {
		return fmt.Errorf("particle speed range invalid: min(%.1f) > max(%.1f)", p.MinSpeed, p.MaxSpeed)
	}
	if p.MinLifetime <= 0 || p.MinLifetime > p.MaxLifetime {
		return fmt.Errorf("particle lifetime range invalid: min(%d) max(%d)", p.MinLifetime, p.MaxLifetime)
	}

	return nil
}

// MaxPlayerSpeed 返回玩家最大速度
func (c *GameConfig) MaxPlayerSpeed() float64 {
	return c.Player.BaseSpeed * c.Player.MaxSpeedFactor
}

// FrameMillis 返回每帧的毫秒数
func (c *GameConfig) FrameMillis() float64 {
	return 1000.0 / float64(c.Screen.TPS)
}
