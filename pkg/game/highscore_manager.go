package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreRecord 持久化的最高分记录
type HighScoreRecord struct {
	HighScore int `yaml:"highScore"`
}

// HighScoreManager 最高分管理器
// 负责最高分的加载、比较和保存
type HighScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	record       HighScoreRecord
}

// 存储路径常量
const (
	highScoreObject   = "scores"
	highScoreProperty = "high_score"
)

// NewHighScoreManager 创建最高分管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *HighScoreManager: 最高分管理器实例，加载失败时从 0 开始
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{gdataManager: gdataManager}
	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: Failed to load high score: %v (starting from 0)", err)
	}
	return hm
}

// Load 从 gdata 加载最高分
func (hm *HighScoreManager) Load() error {
	hm.record = HighScoreRecord{}

	if hm.gdataManager == nil {
		return nil
	}
	if !hm.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var loaded HighScoreRecord
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if loaded.HighScore < 0 {
		loaded.HighScore = 0
	}

	hm.record = loaded
	log.Printf("[HighScoreManager] High score loaded: %d", hm.record.HighScore)
	return nil
}

// Save 保存最高分到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (hm *HighScoreManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&hm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := hm.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreManager] High score saved: %d", hm.record.HighScore)
	return nil
}

// HighScore 当前最高分
func (hm *HighScoreManager) HighScore() int {
	return hm.record.HighScore
}

// Submit 提交一局的最终得分
//
// 得分高于记录时更新并保存。保存失败只记录日志，内存中的记录仍会更新。
//
// 返回：
//   - bool: 是否刷新了最高分
func (hm *HighScoreManager) Submit(score int) bool {
	if score <= hm.record.HighScore {
		return false
	}
	hm.record.HighScore = score
	if err := hm.Save(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v", err)
	}
	return true
}
