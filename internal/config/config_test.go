package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("ENV", "")
	return home
}

func TestDefaultConfigIsValid(t *testing.T) {
	setTestHome(t)

	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, 360, cfg.Thumbnails.Width)
	assert.Equal(t, 270, cfg.Thumbnails.Height)
	assert.Equal(t, 1.0, cfg.Browsing.DefaultZoom)
	assert.Equal(t, "about:blank", cfg.Browsing.HomePage)
	assert.Equal(t, CacheModelBrowser, cfg.Storage.CacheModel)
	assert.NotEmpty(t, cfg.Browsing.UserAgentMobile)
	assert.NotEmpty(t, cfg.Browsing.UserAgentDesktop)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative thumbnail width",
			mutate:  func(c *Config) { c.Thumbnails.Width = -1 },
			wantErr: "thumbnails.width",
		},
		{
			name:    "zoom out of range",
			mutate:  func(c *Config) { c.Browsing.DefaultZoom = 9.0 },
			wantErr: "browsing.default_zoom",
		},
		{
			name:    "empty mobile user agent",
			mutate:  func(c *Config) { c.Browsing.UserAgentMobile = "" },
			wantErr: "browsing.user_agent_mobile",
		},
		{
			name:    "unknown cache model",
			mutate:  func(c *Config) { c.Storage.CacheModel = "turbo" },
			wantErr: "storage.cache_model",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Browsing.UserAgentMobile = "ua-m"
			cfg.Browsing.UserAgentDesktop = "ua-d"
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManagerLoadCreatesDefaultConfig(t *testing.T) {
	setTestHome(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, 360, cfg.Thumbnails.Width)
	assert.Equal(t, CacheModelBrowser, cfg.Storage.CacheModel)
	assert.NotEmpty(t, cfg.Downloads.Directory)
	assert.NotEmpty(t, cfg.Storage.CookiePath)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	_, statErr := os.Stat(configFile)
	assert.NoError(t, statErr, "default config file should be written")
}

func TestManagerLoadReadsExistingFile(t *testing.T) {
	setTestHome(t)

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))

	content := []byte("thumbnails:\n  width: 100\n  height: 75\nstorage:\n  cache_model: VIEWER\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), content, filePerm))

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, 100, cfg.Thumbnails.Width)
	assert.Equal(t, 75, cfg.Thumbnails.Height)
	assert.Equal(t, CacheModelViewer, cfg.Storage.CacheModel, "cache model is normalized to lower case")
}

func TestManagerEnvOverride(t *testing.T) {
	setTestHome(t)
	t.Setenv("MINNOW_THUMBNAILS_WIDTH", "640")
	t.Setenv("MINNOW_BROWSING_HOME_PAGE", "https://start.example.com")

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, 640, cfg.Thumbnails.Width)
	assert.Equal(t, "https://start.example.com", cfg.Browsing.HomePage)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	setTestHome(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	first := manager.Get()
	first.Thumbnails.Width = 1

	second := manager.Get()
	assert.NotEqual(t, 1, second.Thumbnails.Width)
}

func TestXDGDevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	expected := filepath.Join(cwd, ".dev", "minnow")
	assert.Equal(t, expected, dirs.ConfigHome)
	assert.Equal(t, expected, dirs.DataHome)
	assert.Equal(t, expected, dirs.StateHome)
}
