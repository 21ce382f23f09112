// Package config provides configuration management for minnow with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for minnow.
type Config struct {
	Browsing   BrowsingConfig   `mapstructure:"browsing" yaml:"browsing" json:"browsing"`
	Thumbnails ThumbnailsConfig `mapstructure:"thumbnails" yaml:"thumbnails" json:"thumbnails"`
	Downloads  DownloadsConfig  `mapstructure:"downloads" yaml:"downloads" json:"downloads"`
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage" json:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// BrowsingConfig holds per-view browsing preferences.
type BrowsingConfig struct {
	UserAgentMobile  string  `mapstructure:"user_agent_mobile" yaml:"user_agent_mobile" json:"user_agent_mobile"`
	UserAgentDesktop string  `mapstructure:"user_agent_desktop" yaml:"user_agent_desktop" json:"user_agent_desktop"`
	DefaultZoom      float64 `mapstructure:"default_zoom" yaml:"default_zoom" json:"default_zoom"`
	HomePage         string  `mapstructure:"home_page" yaml:"home_page" json:"home_page"`
}

// ThumbnailsConfig sizes the post-load tab thumbnails.
type ThumbnailsConfig struct {
	Width  int `mapstructure:"width" yaml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" json:"height"`
}

// DownloadsConfig holds download routing configuration.
type DownloadsConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory" json:"directory"`
}

// StorageConfig holds engine storage configuration.
type StorageConfig struct {
	CookiePath string `mapstructure:"cookie_path" yaml:"cookie_path" json:"cookie_path"`
	CacheModel string `mapstructure:"cache_model" yaml:"cache_model" json:"cache_model"`
}

// Cache model names accepted by storage.cache_model.
const (
	CacheModelBrowser = "browser"
	CacheModelViewer  = "viewer"
)

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("MINNOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"browsing.user_agent_mobile":  "BROWSING_USER_AGENT_MOBILE",
		"browsing.user_agent_desktop": "BROWSING_USER_AGENT_DESKTOP",
		"browsing.default_zoom":       "BROWSING_DEFAULT_ZOOM",
		"browsing.home_page":          "BROWSING_HOME_PAGE",
		"thumbnails.width":            "THUMBNAILS_WIDTH",
		"thumbnails.height":           "THUMBNAILS_HEIGHT",
		"downloads.directory":         "DOWNLOADS_DIRECTORY",
		"storage.cookie_path":         "STORAGE_COOKIE_PATH",
		"storage.cache_model":         "STORAGE_CACHE_MODEL",
		"logging.level":               "LOGGING_LEVEL",
		"logging.format":              "LOGGING_FORMAT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "MINNOW_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshal decodes, normalizes and validates the current viper state.
func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Downloads.Directory == "" {
		dir, err := GetDownloadsDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get downloads directory: %w", err)
		}
		config.Downloads.Directory = dir
	}
	if config.Storage.CookiePath == "" {
		path, err := GetCookieFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get cookie storage path: %w", err)
		}
		config.Storage.CookiePath = path
	}

	switch strings.ToLower(config.Storage.CacheModel) {
	case "", CacheModelBrowser:
		config.Storage.CacheModel = CacheModelBrowser
	case CacheModelViewer:
		config.Storage.CacheModel = CacheModelViewer
	default:
		config.Storage.CacheModel = CacheModelBrowser
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("browsing.user_agent_mobile", defaults.Browsing.UserAgentMobile)
	m.viper.SetDefault("browsing.user_agent_desktop", defaults.Browsing.UserAgentDesktop)
	m.viper.SetDefault("browsing.default_zoom", defaults.Browsing.DefaultZoom)
	m.viper.SetDefault("browsing.home_page", defaults.Browsing.HomePage)

	m.viper.SetDefault("thumbnails.width", defaults.Thumbnails.Width)
	m.viper.SetDefault("thumbnails.height", defaults.Thumbnails.Height)

	m.viper.SetDefault("downloads.directory", defaults.Downloads.Directory)

	m.viper.SetDefault("storage.cookie_path", defaults.Storage.CookiePath)
	m.viper.SetDefault("storage.cache_model", defaults.Storage.CacheModel)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	defaultConfig := DefaultConfig()

	configData, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to generate config schema: %v\n", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
