// Package config provides default configuration values for minnow.
package config

// Default configuration constants
const (
	defaultThumbnailWidth  = 360
	defaultThumbnailHeight = 270

	defaultZoom = 1.0
)

const (
	defaultMobileUA  = "Mozilla/5.0 (Linux; Mobile) AppleWebKit/538.44 (KHTML, like Gecko) Version/2.4 Mobile Safari/538.44"
	defaultDesktopUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/538.44 (KHTML, like Gecko) Version/2.4 Safari/538.44"

	defaultHomePage = "about:blank"
)

// getDefaultDownloadsDir returns the default downloads directory, falls back
// to empty string on error (resolved again at load time).
func getDefaultDownloadsDir() string {
	dir, err := GetDownloadsDir()
	if err != nil {
		return ""
	}
	return dir
}

// getDefaultCookieFile returns the default cookie storage path, falls back to
// empty string on error.
func getDefaultCookieFile() string {
	path, err := GetCookieFile()
	if err != nil {
		return ""
	}
	return path
}

// DefaultConfig returns the default configuration values for minnow.
func DefaultConfig() *Config {
	return &Config{
		Browsing: BrowsingConfig{
			UserAgentMobile:  defaultMobileUA,
			UserAgentDesktop: defaultDesktopUA,
			DefaultZoom:      defaultZoom,
			HomePage:         defaultHomePage,
		},
		Thumbnails: ThumbnailsConfig{
			Width:  defaultThumbnailWidth,
			Height: defaultThumbnailHeight,
		},
		Downloads: DownloadsConfig{
			Directory: getDefaultDownloadsDir(),
		},
		Storage: StorageConfig{
			CookiePath: getDefaultCookieFile(),
			CacheModel: CacheModelBrowser,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
