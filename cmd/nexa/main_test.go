package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/SimoKiihamaki/nexa/internal/config"
)

func TestStartRouteUsageNamesKnownRoutes(t *testing.T) {
	t.Parallel()

	usage := rootCmd.PersistentFlags().Lookup("start-route").Usage
	var examples []string
	for _, word := range strings.Fields(usage) {
		if strings.HasPrefix(word, "/") {
			examples = append(examples, strings.TrimRight(word, ",."))
		}
	}
	if len(examples) == 0 {
		t.Fatalf("expected example routes in %q", usage)
	}
	for _, route := range examples {
		res := config.Config{StartRoute: route}.ValidateInterField()
		for _, w := range res.Warnings() {
			if w.Field == "start_route" {
				t.Fatalf("expected %q to be a known route, got warning %q", route, w.Message)
			}
		}
	}
}

func TestLoadConfigAppliesStartRouteFlag(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))

	if err := rootCmd.PersistentFlags().Set("start-route", "/auth"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("start-route", "") })

	cfg, _, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StartRoute != "/auth" {
		t.Fatalf("expected start route /auth, got %q", cfg.StartRoute)
	}
}
