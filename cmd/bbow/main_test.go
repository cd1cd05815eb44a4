package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/bbow/internal/bbow"
)

// isolateEnv points HOME at a temp directory and clears BBOW_* overrides so
// tests never read the developer's ~/.bbow/config.yaml.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range []string{"BBOW_LOG_LEVEL", "BBOW_LOG_FORMAT", "BBOW_TOP", "BBOW_MIN_COUNT", "BBOW_INPUT_FORMAT", "BBOW_MAX_BYTES"} {
		t.Setenv(v, "")
	}
	return home
}

// runCmd executes the root command with args and stdin, returning stdout
// and stderr.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()
	if rootCmd.Use != "bbow" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "bbow")
	}

	want := map[string]bool{"count": false, "match": false, "words": false, "config": false, "version": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"json", "config", "log-level", "format"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "bbow version "+version) {
		t.Errorf("unexpected output: %q", out)
	}

	out, _, err = runCmd(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got["version"] != version {
		t.Errorf("version = %q, want %q", got["version"], version)
	}
}

func TestLoadEnv_FlagOverrides(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCmd(t, "x", "count", "--log-level", "verbose")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}

	_, _, err = runCmd(t, "x", "count", "--format", "docx")
	if err == nil {
		t.Error("expected error for unknown input format")
	}
}

func TestLoadEnv_ConfigFlag(t *testing.T) {
	dir := isolateEnv(t)
	cfgPath := writeFile(t, dir, "bbow.yaml", "report:\n  top: 1\n")

	out, _, err := runCmd(t, "b a b", "count", "--config", cfgPath)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if !strings.Contains(out, "  b  2") {
		t.Errorf("expected top word b, got %q", out)
	}
	if strings.Contains(out, "  a  1") {
		t.Errorf("top 1 from config should hide a, got %q", out)
	}

	_, _, err = runCmd(t, "", "count", "--config", filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestIngest_DebugLogging(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := runCmd(t, "Hello, world!", "count", "--log-level", "debug")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if !strings.Contains(stderr, "ingested input") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestIngest_RejectsInvalidUTF8(t *testing.T) {
	dir := isolateEnv(t)
	path := writeFile(t, dir, "bad.txt", "fine \xff broken")

	_, stderr, err := runCmd(t, "", "count", "--log-level", "trace", path)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 input")
	}
	if !strings.Contains(err.Error(), "invalid encoding") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "input rejected") {
		t.Errorf("expected trace log for rejected input, got %q", stderr)
	}
}

func TestRankWords(t *testing.T) {
	bag := bbow.New()
	bag.ExtendFromText("a a a b b c d")

	tests := []struct {
		name     string
		top      int
		minCount uint
		want     []string
	}{
		{"all", 0, 0, []string{"a", "b", "c", "d"}},
		{"top two", 2, 1, []string{"a", "b"}},
		{"min count filters first", 3, 2, []string{"a", "b"}},
		{"min count above all", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rankWords(bag, tt.top, tt.minCount)
			if len(got) != len(tt.want) {
				t.Fatalf("rankWords = %v, want words %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i].Word != tt.want[i] {
					t.Errorf("rankWords[%d] = %q, want %q", i, got[i].Word, tt.want[i])
				}
			}
		})
	}
}

func TestWriteCounts(t *testing.T) {
	var buf bytes.Buffer
	writeCounts(&buf, []bbow.WordCount{{Word: "über", Count: 12}, {Word: "a", Count: 3}})

	want := "  über  12\n  a     3\n"
	if buf.String() != want {
		t.Errorf("writeCounts output = %q, want %q", buf.String(), want)
	}
}
