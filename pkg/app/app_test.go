package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/shooter/pkg/embedded"
)

func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(os.DirFS("../.."))

	cfg, err := loadGameConfig("")
	if err != nil {
		t.Fatalf("加载内嵌配置失败: %v", err)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.TPS <= 0 {
		t.Errorf("内嵌配置无效: %+v", cfg.Screen)
	}
}

func TestLoadGameConfigFromFile(t *testing.T) {
	data, err := os.ReadFile("../../data/game_config.yaml")
	if err != nil {
		t.Fatalf("读取默认配置失败: %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}

	if _, err := loadGameConfig(path); err != nil {
		t.Errorf("从文件加载配置失败: %v", err)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	if _, err := loadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("文件不存在时应返回错误")
	}
}
