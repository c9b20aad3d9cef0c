package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/vault/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Resolve vault.yaml against the project's go.mod and print the
values the gateways will be built with, defaults included.`,
		Usage: "vault config",
		Run:   runConfig,
	})
}

// resolvedView is the YAML shape printed by "vault config".
type resolvedView struct {
	Module   string `yaml:"module"`
	App      config.AppConfig
	Platform string `yaml:"platform"`
	Tabs     struct {
		Accounts string `yaml:"accounts"`
		Scan     string `yaml:"scan"`
		Settings string `yaml:"settings"`
	} `yaml:"tabs"`
	HandoffTTL    string                     `yaml:"handoff_ttl"`
	SettingsAlert config.SettingsAlertConfig `yaml:"settings_alert"`
	Log           config.LogConfig           `yaml:"log"`
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("not in a vault project (no go.mod found)")
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var view resolvedView
	view.Module = cfg.ModulePath
	view.App = config.AppConfig{Name: cfg.AppName, ID: cfg.AppID}
	view.Platform = string(cfg.Platform)
	view.Tabs.Accounts = cfg.Tabs.Accounts
	view.Tabs.Scan = cfg.Tabs.Scan
	view.Tabs.Settings = cfg.Tabs.Settings
	view.HandoffTTL = cfg.HandoffTTL.String()
	view.SettingsAlert = config.SettingsAlertConfig{
		Title:   cfg.SettingsAlert.Title,
		Message: cfg.SettingsAlert.Message,
		Cancel:  cfg.SettingsAlert.CancelText,
		Open:    cfg.SettingsAlert.OpenText,
	}
	view.Log = config.LogConfig{Level: cfg.LogLevel, Verbose: cfg.LogVerbose}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}
