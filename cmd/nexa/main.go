package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/config"
	"github.com/SimoKiihamaki/nexa/internal/logging"
	"github.com/SimoKiihamaki/nexa/internal/store"
	"github.com/SimoKiihamaki/nexa/internal/tui"
)

var overrides = viper.New()

var rootCmd = &cobra.Command{
	Use:           "nexa",
	Short:         "Nexa creator marketplace in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, warnings, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dir, err := config.Dir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		logger, logPath, err := logging.New(cfg.LogLevel, dir)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		for _, w := range warnings {
			logger.Warn("config", zap.String("warning", w))
		}
		logger.Info("starting",
			zap.String("backend", cfg.BackendURL),
			zap.String("start_route", cfg.StartRoute),
		)

		client := authapi.New(cfg.BackendURL,
			authapi.WithTimeout(cfg.HTTPTimeout()),
			authapi.WithLogger(logger),
		)
		m := tui.New(tui.Options{
			Store:      store.New(),
			Client:     client,
			Logger:     logger,
			Config:     cfg,
			SystemDark: lipgloss.HasDarkBackground(),
			LogPath:    logPath,
		})

		var opts []tea.ProgramOption
		if cfg.AltScreen() {
			opts = append(opts, tea.WithAltScreen())
		}
		if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
			logger.Error("program exited", zap.Error(err))
			return err
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Check the config file and flags for mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, warnings, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}

		result := cfg.ValidateInterField()
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "%s: %s: %s\n", issue.Severity, issue.Field, issue.Message)
		}
		if n := len(result.Errors()); n > 0 {
			return fmt.Errorf("config has %d error(s)", n)
		}
		fmt.Fprintln(out, "config ok")
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to config.yaml (overrides "+config.EnvConfigPath+")")
	flags.String("backend-url", "", "auth backend base URL; empty runs offline")
	flags.String("log-level", "", "DEBUG, INFO, WARNING or ERROR")
	flags.String("theme", "", "light, dark or system")
	flags.String("start-route", "", "route opened on launch, e.g. /auth or /creator/dashboard")

	for _, name := range []string{"backend-url", "log-level", "theme", "start-route"} {
		_ = overrides.BindPFlag(name, flags.Lookup(name))
	}
	overrides.SetEnvPrefix("NEXA")
	overrides.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	overrides.AutomaticEnv()

	rootCmd.AddCommand(validateCmd)
}

// loadConfig reads config.yaml and layers environment and flag values on top.
func loadConfig(cmd *cobra.Command) (config.Config, []string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		if err := os.Setenv(config.EnvConfigPath, p); err != nil {
			return config.Config{}, nil, fmt.Errorf("set config path: %w", err)
		}
	}

	result := config.LoadWithWarnings()
	cfg := result.Config
	if overrides.IsSet("backend-url") {
		cfg.BackendURL = strings.TrimRight(strings.TrimSpace(overrides.GetString("backend-url")), "/")
	}
	if overrides.IsSet("log-level") {
		cfg.LogLevel = strings.ToUpper(strings.TrimSpace(overrides.GetString("log-level")))
	}
	if overrides.IsSet("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(overrides.GetString("theme")))
	}
	if overrides.IsSet("start-route") {
		cfg.StartRoute = strings.TrimSpace(overrides.GetString("start-route"))
	}
	return cfg, result.Warnings, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nexa:", err)
		os.Exit(1)
	}
}
