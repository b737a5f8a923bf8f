package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("shooter_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	// 测试结束后删除测试目录
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

// TestHighScoreManagerNilGdata 测试降级模式：只在内存中记录
func TestHighScoreManagerNilGdata(t *testing.T) {
	hm := NewHighScoreManager(nil)

	if hm.HighScore() != 0 {
		t.Errorf("Initial high score: got %d, want 0", hm.HighScore())
	}

	if !hm.Submit(120) {
		t.Error("Submit(120) should set a new high score")
	}
	if hm.Submit(80) {
		t.Error("Submit(80) should not beat 120")
	}
	if hm.Submit(120) {
		t.Error("Submit(120) should not count as a new record when equal")
	}
	if hm.HighScore() != 120 {
		t.Errorf("High score: got %d, want 120", hm.HighScore())
	}

	if err := hm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
}

// TestHighScoreManagerPersistence 测试最高分在 gdata 中的往返
func TestHighScoreManagerPersistence(t *testing.T) {
	manager := createTestGdataManager(t, "persist")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	hm := NewHighScoreManager(manager)
	if hm.HighScore() != 0 {
		t.Fatalf("Fresh storage should start at 0, got %d", hm.HighScore())
	}
	hm.Submit(250)

	reloaded := NewHighScoreManager(manager)
	if reloaded.HighScore() != 250 {
		t.Errorf("Reloaded high score: got %d, want 250", reloaded.HighScore())
	}
}

// TestHighScoreManagerCorruptData 测试损坏的存档回退为 0
func TestHighScoreManagerCorruptData(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if err := manager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("highScore: [oops")); err != nil {
		t.Fatalf("Failed to write corrupt data: %v", err)
	}

	hm := NewHighScoreManager(manager)
	if hm.HighScore() != 0 {
		t.Errorf("Corrupt data should fall back to 0, got %d", hm.HighScore())
	}
	if err := hm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
}
