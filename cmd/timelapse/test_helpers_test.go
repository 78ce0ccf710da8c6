package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OliverBailey/runelite-timelapse/internal/config"
)

// runCLI executes the command tree with args and returns captured output.
func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// setupCLITestEnv redirects HOME to a sandbox and writes a minimal valid
// config file so commands resolve paths inside the test directory.
func setupCLITestEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SCREENSHOTS_DIR", "")
	t.Setenv("MUSIC_FILE", "")

	shots := filepath.Join(base, "screenshots")
	if err := os.MkdirAll(shots, 0o755); err != nil {
		t.Fatalf("mkdir screenshots: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "timelapse", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := strings.Join([]string{
		"[paths]",
		`screenshots_dir = "` + shots + `"`,
		`staging_dir = "` + filepath.Join(base, "staging") + `"`,
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
		`output_video = "` + filepath.Join(base, "out.mp4") + `"`,
		"",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

// loadTestConfig loads the config the sandbox environment resolves to.
func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load test config: %v", err)
	}
	return cfg
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
