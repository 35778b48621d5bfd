package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"reservoirs/internal/config"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	CloseAll()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

// TestProductionModeIsSilent tests that nothing is written without debug_mode
func TestProductionModeIsSilent(t *testing.T) {
	defer CloseAll()
	logPath := filepath.Join(t.TempDir(), "reservoirs.log")

	if err := Initialize(config.LoggingConfig{Level: "debug", File: logPath}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if IsCategoryEnabled(CategoryCollection) {
		t.Error("Expected categories to be disabled without debug mode")
	}

	Get(CategoryCollection).Info("should not appear")
	CloseAll()

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log file should not exist in production mode, stat err: %v", err)
	}
}

// TestCategoriesLog tests that enabled categories write named entries
func TestCategoriesLog(t *testing.T) {
	defer CloseAll()
	logPath := filepath.Join(t.TempDir(), "reservoirs.log")

	err := Initialize(config.LoggingConfig{
		Level:      "debug",
		Format:     "json",
		File:       logPath,
		DebugMode:  true,
		Categories: map[string]bool{"console": false},
	})
	if err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	Get(CategoryCollection).Debug("record added", zap.Int("size", 1))
	Get(CategoryConsole).Info("hidden console entry")
	Boot("boot entry")
	ConfigEvent("config entry")
	if IsCategoryEnabled(CategoryConsole) {
		t.Error("console category should be disabled")
	}

	content := readLog(t, logPath)
	for _, want := range []string{`"logger":"collection"`, `"msg":"record added"`, `"size":1`, `"logger":"boot"`, `"logger":"config"`, "logging initialized"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %s:\n%s", want, content)
		}
	}
	if strings.Contains(content, "hidden console entry") {
		t.Error("disabled category wrote to the log")
	}
}

func TestLevelFiltering(t *testing.T) {
	defer CloseAll()
	logPath := filepath.Join(t.TempDir(), "reservoirs.log")

	if err := Initialize(config.LoggingConfig{Level: "warn", File: logPath, DebugMode: true}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	Get(CategoryConsole).Info("info entry")
	Get(CategoryConsole).Warn("warn entry")

	content := readLog(t, logPath)
	if strings.Contains(content, "info entry") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(content, "warn entry") || !strings.Contains(content, "console") {
		t.Errorf("expected console warn entry in text log:\n%s", content)
	}
}

func TestBuild_InvalidLevel(t *testing.T) {
	if _, err := Build(config.LoggingConfig{DebugMode: true, Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
	l, err := Build(config.LoggingConfig{Level: "loud"})
	if err != nil || l == nil {
		t.Errorf("production mode ignores level, got %v", err)
	}
}

func TestCloseAllResets(t *testing.T) {
	if err := Initialize(config.LoggingConfig{DebugMode: true, File: filepath.Join(t.TempDir(), "x.log")}); err != nil {
		t.Fatal(err)
	}
	CloseAll()
	if IsCategoryEnabled(CategoryBoot) {
		t.Error("CloseAll should reset debug mode")
	}
}
