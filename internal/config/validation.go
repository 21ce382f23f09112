// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Thumbnails.Width < 0 {
		validationErrors = append(validationErrors, "thumbnails.width must be non-negative")
	}
	if config.Thumbnails.Height < 0 {
		validationErrors = append(validationErrors, "thumbnails.height must be non-negative")
	}

	if config.Browsing.DefaultZoom < 0.1 || config.Browsing.DefaultZoom > 5.0 {
		validationErrors = append(validationErrors, "browsing.default_zoom must be between 0.1 and 5.0")
	}
	if config.Browsing.UserAgentMobile == "" {
		validationErrors = append(validationErrors, "browsing.user_agent_mobile cannot be empty")
	}
	if config.Browsing.UserAgentDesktop == "" {
		validationErrors = append(validationErrors, "browsing.user_agent_desktop cannot be empty")
	}

	switch config.Storage.CacheModel {
	case CacheModelBrowser, CacheModelViewer:
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("storage.cache_model must be one of: browser, viewer (got: %s)", config.Storage.CacheModel))
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "json", "console":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be json or console (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
