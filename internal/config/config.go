package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SimoKiihamaki/nexa/internal/utils"
)

// Environment variables read by the client.
const (
	EnvConfigPath = "NEXA_CONFIG"
	EnvBackendURL = "NEXA_BACKEND_URL"
)

// Default configuration values
const (
	DefaultNarrowWidth    = 90
	DefaultToastTTLMs     = 4000
	DefaultTimeoutSeconds = 15
	ConfigVersion         = "1.1.0" // Increment when schema changes require migration
)

// UI configures TUI display settings.
type UI struct {
	NarrowWidth *int  `yaml:"narrow_width"` // Columns below which the nav becomes an overlay
	ToastTTLMs  *int  `yaml:"toast_ttl_ms"` // Status message duration in milliseconds
	AltScreen   *bool `yaml:"alt_screen"`
}

// HTTP configures the auth API client.
type HTTP struct {
	TimeoutSeconds *int `yaml:"timeout_seconds"`
}

type Config struct {
	Version     string `yaml:"version,omitempty"` // Config schema version for migrations
	BackendURL  string `yaml:"backend_url"`
	LogLevel    string `yaml:"log_level"`
	Theme       string `yaml:"theme"`
	OpenCommand string `yaml:"open_command"`
	SiteURL     string `yaml:"site_url"` // Public page opened from the landing screen
	StartRoute  string `yaml:"start_route"`
	UI          UI     `yaml:"ui"`
	HTTP        HTTP   `yaml:"http"`
}

// Defaults returns a sensible default config.
func Defaults() Config {
	return Config{
		Version:     ConfigVersion,
		BackendURL:  "",
		LogLevel:    "INFO",
		Theme:       "system",
		OpenCommand: "",
		SiteURL:     "",
		StartRoute:  "/",
		UI: UI{
			NarrowWidth: utils.IntPtr(DefaultNarrowWidth),
			ToastTTLMs:  utils.IntPtr(DefaultToastTTLMs),
			AltScreen:   utils.BoolPtr(true),
		},
		HTTP: HTTP{
			TimeoutSeconds: utils.IntPtr(DefaultTimeoutSeconds),
		},
	}
}

// Dir returns the directory holding the config file and logs.
func Dir() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return filepath.Dir(p), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nexa"), nil
}

// Path returns the config file location.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// migrateConfig brings c up to ConfigVersion and describes what changed.
func migrateConfig(c Config) (Config, []string) {
	var warnings []string

	switch {
	case c.Version == "":
		c.Version = ConfigVersion
		warnings = append(warnings, "config upgraded to version "+ConfigVersion)
	case compareVersions(c.Version, ConfigVersion) < 0:
		// 1.0.x stored the backend under api_url; Load copies it across.
		warnings = append(warnings, fmt.Sprintf("config upgraded from %s to %s", c.Version, ConfigVersion))
		c.Version = ConfigVersion
	}

	return c, warnings
}

// compareVersions compares two semantic version strings.
// Returns -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2.
// Missing or malformed parts count as zero.
func compareVersions(v1, v2 string) int {
	parse := func(v string) [3]int {
		var out [3]int
		for i, part := range strings.SplitN(v, ".", 3) {
			_, _ = fmt.Sscanf(part, "%d", &out[i])
		}
		return out
	}

	a, b := parse(v1), parse(v2)
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// LoadResult holds the loaded configuration and any warnings raised while
// loading it.
type LoadResult struct {
	Config   Config
	Warnings []string
}

// Load reads the configuration from disk, falling back to defaults on error.
// It never fails; warnings go to the standard logger. Use LoadWithWarnings
// to handle them yourself.
func Load() Config {
	result := LoadWithWarnings()
	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}
	return result.Config
}

// legacy holds keys from older schema versions.
type legacy struct {
	APIURL string `yaml:"api_url"`
}

// LoadWithWarnings reads the configuration from disk and returns any warnings
// encountered during loading.
func LoadWithWarnings() LoadResult {
	p, err := Path()
	if err != nil {
		return withEnv(LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not determine config path: " + err.Error()},
		})
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return withEnv(LoadResult{Config: Defaults()})
	}
	if err != nil {
		return withEnv(LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not read config file: " + err.Error()},
		})
	}
	return withEnv(parse(b))
}

func parse(b []byte) LoadResult {
	// Start with an empty config so explicit zero values survive.
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{fmt.Sprintf("config file corrupt (using defaults): %v", err)},
		}
	}
	var old legacy
	_ = yaml.Unmarshal(b, &old)
	if c.BackendURL == "" && old.APIURL != "" {
		c.BackendURL = old.APIURL
	}

	c, warnings := migrateConfig(c)
	defaults := Defaults()

	setStringDefault := func(field *string, value string) {
		if strings.TrimSpace(*field) == "" {
			*field = value
		}
	}
	setStringDefault(&c.LogLevel, defaults.LogLevel)
	setStringDefault(&c.Theme, defaults.Theme)
	setStringDefault(&c.StartRoute, defaults.StartRoute)

	// Pointer fields take defaults only when absent, preserving explicit zeros.
	if c.UI.NarrowWidth == nil {
		c.UI.NarrowWidth = utils.IntPtr(*defaults.UI.NarrowWidth)
	}
	if c.UI.ToastTTLMs == nil {
		c.UI.ToastTTLMs = utils.IntPtr(*defaults.UI.ToastTTLMs)
	}
	if c.UI.AltScreen == nil {
		c.UI.AltScreen = utils.BoolPtr(*defaults.UI.AltScreen)
	}
	if c.HTTP.TimeoutSeconds == nil {
		c.HTTP.TimeoutSeconds = utils.IntPtr(*defaults.HTTP.TimeoutSeconds)
	}

	c.LogLevel = normalizeLevel(c.LogLevel)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")

	if *c.UI.NarrowWidth <= 0 {
		warnings = append(warnings, fmt.Sprintf("ui.narrow_width must be > 0, got %d; using default value %d", *c.UI.NarrowWidth, DefaultNarrowWidth))
		c.UI.NarrowWidth = utils.IntPtr(DefaultNarrowWidth)
	}

	return LoadResult{Config: c, Warnings: warnings}
}

func withEnv(r LoadResult) LoadResult {
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		r.Config.BackendURL = strings.TrimRight(v, "/")
	}
	return r
}

func normalizeLevel(level string) string {
	upper := strings.ToUpper(strings.TrimSpace(level))
	switch upper {
	case "":
		return "INFO"
	case "WARN":
		return "WARNING"
	}
	return upper
}

// DefaultSaveTimeout is the maximum time allowed for a config save operation.
const DefaultSaveTimeout = 5 * time.Second

// Save writes the configuration to disk.
func Save(c Config) error {
	return SaveWithTimeout(c, DefaultSaveTimeout)
}

// SaveWithTimeout writes the configuration to disk and gives up after timeout.
func SaveWithTimeout(c Config, timeout time.Duration) error {
	if _, err := EnsureDir(); err != nil {
		return err
	}
	p, err := Path()
	if err != nil {
		return err
	}
	c.Version = ConfigVersion
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- os.WriteFile(p, b, 0o600)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return errors.New("config save timed out after " + timeout.String())
	}
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := c
	if c.UI.NarrowWidth != nil {
		out.UI.NarrowWidth = utils.IntPtr(*c.UI.NarrowWidth)
	}
	if c.UI.ToastTTLMs != nil {
		out.UI.ToastTTLMs = utils.IntPtr(*c.UI.ToastTTLMs)
	}
	if c.UI.AltScreen != nil {
		out.UI.AltScreen = utils.BoolPtr(*c.UI.AltScreen)
	}
	if c.HTTP.TimeoutSeconds != nil {
		out.HTTP.TimeoutSeconds = utils.IntPtr(*c.HTTP.TimeoutSeconds)
	}
	return out
}

// Equal reports whether two configurations hold the same values. Version is
// ignored since it is managed by Load and Save.
func (c Config) Equal(other Config) bool {
	if c.BackendURL != other.BackendURL ||
		c.LogLevel != other.LogLevel ||
		c.Theme != other.Theme ||
		c.OpenCommand != other.OpenCommand ||
		c.SiteURL != other.SiteURL ||
		c.StartRoute != other.StartRoute {
		return false
	}
	return equalIntPointers(c.UI.NarrowWidth, other.UI.NarrowWidth) &&
		equalIntPointers(c.UI.ToastTTLMs, other.UI.ToastTTLMs) &&
		equalBoolPointers(c.UI.AltScreen, other.UI.AltScreen) &&
		equalIntPointers(c.HTTP.TimeoutSeconds, other.HTTP.TimeoutSeconds)
}

// Resolved accessors fall back to defaults for nil pointers.

func (c Config) NarrowWidth() int {
	if c.UI.NarrowWidth == nil || *c.UI.NarrowWidth <= 0 {
		return DefaultNarrowWidth
	}
	return *c.UI.NarrowWidth
}

func (c Config) ToastTTL() time.Duration {
	if c.UI.ToastTTLMs == nil {
		return DefaultToastTTLMs * time.Millisecond
	}
	return time.Duration(*c.UI.ToastTTLMs) * time.Millisecond
}

func (c Config) AltScreen() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTP.TimeoutSeconds == nil || *c.HTTP.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(*c.HTTP.TimeoutSeconds) * time.Second
}

func equalIntPointers(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalBoolPointers(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
