package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nvandessel/bbow/internal/config"
	"gopkg.in/yaml.v3"
)

func TestConfigListCmd_YAML(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "", "config", "list")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}

	var cfg config.BbowConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid YAML %q: %v", out, err)
	}
	if cfg.Report.Top != 10 {
		t.Errorf("report.top = %d, want 10", cfg.Report.Top)
	}
	if !strings.Contains(out, "min_count: 1") {
		t.Errorf("expected yaml keys in output, got %q", out)
	}
}

func TestConfigListCmd_JSONReflectsEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BBOW_TOP", "4")

	out, _, err := runCmd(t, "", "config", "list", "--json")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}

	var cfg config.BbowConfig
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if cfg.Report.Top != 4 {
		t.Errorf("report.top = %d, want 4", cfg.Report.Top)
	}
}

func TestConfigGetCmd(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"logging.level", "logging.level = info\n"},
		{"logging.format", "logging.format = text\n"},
		{"report.top", "report.top = 10\n"},
		{"report.min_count", "report.min_count = 1\n"},
		{"input.format", "input.format = auto\n"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateEnv(t)

			out, _, err := runCmd(t, "", "config", "get", tt.key)
			if err != nil {
				t.Fatalf("config get failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConfigGetCmd_UnknownKey(t *testing.T) {
	isolateEnv(t)

	if _, _, err := runCmd(t, "", "config", "get", "llm.provider"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGetConfigValue_AllKeys(t *testing.T) {
	cfg := config.Default()
	for _, key := range []string{"logging.level", "logging.format", "report.top", "report.min_count", "input.format", "input.max_bytes"} {
		if _, ok := getConfigValue(cfg, key); !ok {
			t.Errorf("getConfigValue(%q) not found", key)
		}
	}
}
