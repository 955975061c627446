package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with the tracker's
// environment variables cleared.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{EnvInventory, EnvReload, EnvJournal, EnvLogLevel} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "inventory.txt", cfg.InventoryPath)
	assert.Equal(t, "clear", cfg.Reload)
	assert.Empty(t, cfg.JournalPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_DefaultFileIsPickedUp(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile),
		[]byte("inventory_path: stock.txt\nreload: once\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "stock.txt", cfg.InventoryPath)
	assert.Equal(t, "once", cfg.Reload)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("journal_path: history.db\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "history.db", cfg.JournalPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed reading config nope.yaml")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reload: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed parsing config")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile),
		[]byte("inventory_path: stock.txt\n"), 0o644))
	t.Setenv(EnvInventory, "env.txt")
	t.Setenv(EnvReload, "append")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.InventoryPath)
	assert.Equal(t, "append", cfg.Reload)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv(EnvJournal)
	t.Cleanup(func() { os.Unsetenv(EnvJournal) })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte(EnvJournal+"=dotenv.db\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv.db", cfg.JournalPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"empty inventory path", func(c *Config) { c.InventoryPath = "" }, "inventory path must be provided"},
		{"unknown reload mode", func(c *Config) { c.Reload = "sometimes" }, `invalid reload mode "sometimes"`},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, `invalid log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
