package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "hmdview.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	payload := strings.Repeat("x", 256)
	for i := 0; i < 6000; i++ {
		Debug("frame", zap.Int("n", i), zap.String("payload", payload))
	}
	Sync()

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	var rotated []string
	for _, e := range entries {
		if e.Name() != "hmdview.log" && strings.HasPrefix(e.Name(), "hmdview-") {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) == 0 {
		t.Fatalf("expected a rotated file, found %d entries", len(entries))
	}
	for _, name := range rotated {
		if !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s should keep the .log extension", name)
		}
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile}, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			content := readLog(t, logFile)
			for _, exp := range tt.expected {
				if !strings.Contains(content, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(content, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestSetLevelAtRuntime(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "level.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("hidden")
	SetLevel("debug")
	if Level().String() != "debug" {
		t.Fatalf("Level() = %s, want debug", Level())
	}
	Debug("shown")
	SetLevel("info")

	content := readLog(t, logFile)
	if strings.Contains(content, "hidden") {
		t.Error("debug entry written before the level was lowered")
	}
	if !strings.Contains(content, "shown") {
		t.Error("debug entry missing after SetLevel(debug)")
	}
}

func TestBuildConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	log, err := Build(Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	log.Named("renderer").Info("program built")
	_ = log.Sync()

	out := buf.String()
	if !strings.Contains(out, "program built") {
		t.Errorf("message missing from console output: %q", out)
	}
	if !strings.Contains(out, "renderer") {
		t.Errorf("logger name missing from console output: %q", out)
	}
}

func TestBuildWithoutOutputs(t *testing.T) {
	log, err := Build(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	log.Info("dropped")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/hmdview.log")

	if cfg.Path != "/tmp/hmdview.log" {
		t.Errorf("expected path /tmp/hmdview.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 || !cfg.Compress {
		t.Errorf("unexpected rotation settings: %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"", "info"},
		{"verbose", "info"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNamedWritesSubsystem(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	Named("camera").Info("state changed")

	if content := readLog(t, logFile); !strings.Contains(content, "camera") {
		t.Errorf("expected subsystem name in output, got %q", content)
	}
}
