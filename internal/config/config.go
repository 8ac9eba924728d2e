// Package config handles the harvester's global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in
// ~/.config/docrepo-ads/config.yml.
type GlobalConfig struct {
	ADSToken  string `yaml:"ads_token,omitempty"`
	RepoURL   string `yaml:"repo_url,omitempty"`
	CachePath string `yaml:"cache_path,omitempty"`
	NotesFile string `yaml:"notes_file,omitempty"`
	ArXivFile string `yaml:"arxiv_file,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "docrepo-ads"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultRepoURL is the IVOA document repository index.
	DefaultRepoURL = "http://www.ivoa.net/documents/"
	// DefaultNotesFile lists landing URLs of notes approved for submission.
	DefaultNotesFile = "published_notes.txt"
	// DefaultArXivFile maps document short names to arXiv ids.
	DefaultArXivFile = "arXiv_ids.txt"
	// DefaultCacheFile is the page cache database name.
	DefaultCacheFile = "pages.db"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/docrepo-ads/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobal() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// Save writes the global configuration, creating its directory if needed.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine global config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	ResetGlobalConfigCache()
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetADSToken returns the ADS access token. The ADS_API_TOKEN environment
// variable wins over the config file.
func GetADSToken() string {
	if t := os.Getenv("ADS_API_TOKEN"); t != "" {
		return t
	}
	cfg, _ := LoadGlobal()
	return cfg.ADSToken
}

// GetRepoURL returns the configured repository URL, or the default.
func GetRepoURL() string {
	cfg, _ := LoadGlobal()
	if cfg.RepoURL != "" {
		return cfg.RepoURL
	}
	return DefaultRepoURL
}

// GetCachePath returns the page cache location: the configured path, or
// DefaultCacheFile under the user cache directory.
func GetCachePath() string {
	cfg, _ := LoadGlobal()
	if cfg.CachePath != "" {
		return cfg.CachePath
	}
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		return DefaultCacheFile
	}
	return filepath.Join(cacheHome, GlobalConfigDir, DefaultCacheFile)
}
