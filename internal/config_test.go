package internal

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "lox.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("A missing file should not fail: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", config)
	}

	config, err = LoadConfig(writeConfig(t, `
log_level: debug
color: never
prompt: "lox> "
max_call_depth: 50
`))
	if err != nil {
		t.Fatal(err)
	}
	if config.Color != ColorNever || config.Prompt != "lox> " || config.MaxCallDepth != 50 {
		t.Errorf("Unexpected config %+v", config)
	}
	// Unset keys keep their default
	if config.HistoryFile != DefaultConfig().HistoryFile {
		t.Errorf("Unexpected history file %q", config.HistoryFile)
	}
	if level, err := config.Level(); err != nil || level != logrus.DebugLevel {
		t.Errorf("Unexpected level %v %v", level, err)
	}
	if config.NewLogger().GetLevel() != logrus.DebugLevel {
		t.Error("The logger should use the configured level")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, content := range []string{
		"color: purple",
		"max_call_depth: -1",
		"log_level: loud",
		"prompt: [",
	} {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("Expected an error for %q", content)
		}
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigEnv, "/tmp/custom.yaml")
	if path := ConfigPath(); path != "/tmp/custom.yaml" {
		t.Errorf("Unexpected path %q", path)
	}

	t.Setenv(ConfigEnv, "")
	if path := ConfigPath(); filepath.Base(path) != ".lox.yaml" {
		t.Errorf("Unexpected path %q", path)
	}
}

func TestHistoryPath(t *testing.T) {
	config := DefaultConfig()
	config.HistoryFile = "/var/tmp/history"
	if config.HistoryPath() != "/var/tmp/history" {
		t.Errorf("Unexpected path %q", config.HistoryPath())
	}

	config.HistoryFile = ""
	if config.HistoryPath() != "" {
		t.Errorf("Unexpected path %q", config.HistoryPath())
	}

	config.HistoryFile = ".hist"
	if home, err := os.UserHomeDir(); err == nil && config.HistoryPath() != filepath.Join(home, ".hist") {
		t.Errorf("Unexpected path %q", config.HistoryPath())
	}
}
