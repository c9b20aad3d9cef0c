package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/vault/pkg/navigation"
	"github.com/go-drift/vault/pkg/permissions"
	"github.com/go-drift/vault/pkg/platform"
)

func writeProject(t *testing.T, module, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+module+"\n\ngo 1.24.0\n"), 0o644))
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644))
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "github.com/go-drift/vault", "")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/go-drift/vault", cfg.ModulePath)
	assert.Equal(t, "vault", cfg.AppName)
	assert.Empty(t, cfg.AppID, "app.id has no default")
	assert.Equal(t, platform.CurrentKind(), cfg.Platform)
	assert.Equal(t, navigation.DefaultTabs, cfg.Tabs)
	assert.Equal(t, navigation.DefaultHandoffTTL, cfg.HandoffTTL)
	assert.Equal(t, permissions.DefaultSettingsAlert, cfg.SettingsAlert)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogVerbose)
}

func TestResolveFromFile(t *testing.T) {
	dir := writeProject(t, "example.com/wallet/v2", `
app:
  name: Vault
  id: com.example.vault
platform:
  kind: iOS
navigation:
  handoff_ttl: 90s
  tabs:
    scan: /scanner
permissions:
  settings_alert:
    title: Permissions
log:
  level: debug
  verbose: true
`)

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Vault", cfg.AppName)
	assert.Equal(t, "com.example.vault", cfg.AppID)
	assert.Equal(t, platform.KindIOS, cfg.Platform)
	assert.Equal(t, 90*time.Second, cfg.HandoffTTL)
	assert.Equal(t, "/scanner", cfg.Tabs.Scan)
	assert.Equal(t, navigation.DefaultTabs.Accounts, cfg.Tabs.Accounts)
	assert.Equal(t, "Permissions", cfg.SettingsAlert.Title)
	assert.Equal(t, permissions.DefaultSettingsAlert.OpenText, cfg.SettingsAlert.OpenText)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogVerbose)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "app: [unterminated"},
		{"bad platform", "platform:\n  kind: windows-phone\n"},
		{"bad ttl", "navigation:\n  handoff_ttl: soon\n"},
		{"negative ttl", "navigation:\n  handoff_ttl: -1m\n"},
		{"relative tab", "navigation:\n  tabs:\n    accounts: tabs/accounts\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, "github.com/go-drift/vault", tt.yaml)
			_, err := Resolve(dir)
			assert.Error(t, err)
		})
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	_, err := Resolve(t.TempDir())
	assert.Error(t, err)
}

func TestDefaultAppName(t *testing.T) {
	assert.Equal(t, "wallet", defaultAppName("example.com/wallet/v2", "/tmp/x"))
	assert.Equal(t, "vault", defaultAppName("vault", "/tmp/x"))
}
