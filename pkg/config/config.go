// Package config loads vault.yaml and resolves the settings the gateways are
// built from.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/vault/pkg/navigation"
	"github.com/go-drift/vault/pkg/permissions"
	"github.com/go-drift/vault/pkg/platform"
)

// FileName is the optional configuration file at the project root.
const FileName = "vault.yaml"

// Config represents the optional vault.yaml configuration.
type Config struct {
	App         AppConfig         `yaml:"app"`
	Platform    PlatformConfig    `yaml:"platform"`
	Navigation  NavigationConfig  `yaml:"navigation"`
	Permissions PermissionsConfig `yaml:"permissions"`
	Log         LogConfig         `yaml:"log"`
}

// AppConfig contains application metadata. ID is the native application id
// and is passed through unchanged.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// PlatformConfig forces the platform family instead of detecting it.
type PlatformConfig struct {
	Kind string `yaml:"kind,omitempty"`
}

// NavigationConfig configures the navigation gateway.
type NavigationConfig struct {
	Tabs       TabsConfig `yaml:"tabs"`
	HandoffTTL string     `yaml:"handoff_ttl,omitempty"`
}

// TabsConfig overrides the tab destinations.
type TabsConfig struct {
	Accounts string `yaml:"accounts,omitempty"`
	Scan     string `yaml:"scan,omitempty"`
	Settings string `yaml:"settings,omitempty"`
}

// PermissionsConfig configures the permission gateway.
type PermissionsConfig struct {
	SettingsAlert SettingsAlertConfig `yaml:"settings_alert"`
}

// SettingsAlertConfig overrides the settings alert text.
type SettingsAlertConfig struct {
	Title   string `yaml:"title,omitempty"`
	Message string `yaml:"message,omitempty"`
	Cancel  string `yaml:"cancel,omitempty"`
	Open    string `yaml:"open,omitempty"`
}

// LogConfig configures logging and error reporting.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	AppID         string
	Platform      platform.Kind
	Tabs          navigation.Tabs
	HandoffTTL    time.Duration
	SettingsAlert permissions.SettingsAlert
	LogLevel      string
	LogVerbose    bool
}

// LoadOptional reads vault.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads vault.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	kind, err := resolveKind(cfg.Platform.Kind)
	if err != nil {
		return nil, err
	}

	ttl := navigation.DefaultHandoffTTL
	if raw := strings.TrimSpace(cfg.Navigation.HandoffTTL); raw != "" {
		ttl, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("navigation.handoff_ttl: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("navigation.handoff_ttl must be positive (got %q)", raw)
		}
	}

	tabs := navigation.DefaultTabs
	for _, o := range []struct {
		dst *string
		src string
		key string
	}{
		{&tabs.Accounts, cfg.Navigation.Tabs.Accounts, "accounts"},
		{&tabs.Scan, cfg.Navigation.Tabs.Scan, "scan"},
		{&tabs.Settings, cfg.Navigation.Tabs.Settings, "settings"},
	} {
		src := strings.TrimSpace(o.src)
		if src == "" {
			continue
		}
		if !strings.HasPrefix(src, "/") {
			return nil, fmt.Errorf("navigation.tabs.%s must be an absolute path (got %q)", o.key, src)
		}
		*o.dst = src
	}

	alert := permissions.DefaultSettingsAlert
	sa := cfg.Permissions.SettingsAlert
	for _, o := range []struct {
		dst *string
		src string
	}{
		{&alert.Title, sa.Title},
		{&alert.Message, sa.Message},
		{&alert.CancelText, sa.Cancel},
		{&alert.OpenText, sa.Open},
	} {
		if s := strings.TrimSpace(o.src); s != "" {
			*o.dst = s
		}
	}

	logLevel := strings.TrimSpace(cfg.Log.Level)
	if logLevel == "" {
		logLevel = "info"
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		AppID:         strings.TrimSpace(cfg.App.ID),
		Platform:      kind,
		Tabs:          tabs,
		HandoffTTL:    ttl,
		SettingsAlert: alert,
		LogLevel:      logLevel,
		LogVerbose:    cfg.Log.Verbose,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func resolveKind(raw string) (platform.Kind, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return platform.CurrentKind(), nil
	}
	kind := platform.ParseKind(raw)
	if kind == platform.KindOther && !strings.EqualFold(raw, string(platform.KindOther)) {
		return "", fmt.Errorf("platform.kind must be android, ios or other (got %q)", raw)
	}
	return kind, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultAppName is the last element of the module path, without any
// major-version suffix.
func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		if i := strings.LastIndex(prefix, "/"); i >= 0 {
			base = prefix[i+1:]
		} else if prefix != "" {
			base = prefix
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "vault"
	}
	return base
}
