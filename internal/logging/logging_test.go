package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"WARNING": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"chatty":  zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewWritesToLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, path, err := New("DEBUG", dir)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if want := filepath.Join(dir, "logs", FileName); path != want {
		t.Fatalf("expected path %q, got %q", want, path)
	}

	logger.Debug("route changed")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"route changed"`) {
		t.Fatalf("expected log line in file, got %q", string(b))
	}
}

func TestNewRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	logger, path, err := New("ERROR", dir)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("ignored")
	_ = logger.Sync()

	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "ignored") {
		t.Fatalf("expected info line to be filtered, got %q", string(b))
	}
}
