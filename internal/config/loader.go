package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
)

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("SPLITGRID_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "splitgrid", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "splitgrid", "config.toml")
	}
	return ""
}

// GetConfigDir returns the directory the user config is read from.
func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

func loadDefaultConfig() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// Load returns the effective configuration: embedded defaults with the
// user file, if any, merged on top and validated.
func Load() *Config {
	config := loadDefaultConfig()

	data, err := loadConfigFile()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: ignoring unreadable user config: %v", err)
		}
		config.Validate()
		return config
	}
	if err := config.Load(string(data)); err != nil {
		log.Printf("config: ignoring invalid user config: %v", err)
		config = loadDefaultConfig()
	}
	config.Validate()
	return config
}

func loadConfigFile() ([]byte, error) {
	configFile := getConfigFilePath()
	if configFile == "" {
		return nil, fs.ErrNotExist
	}
	if _, err := os.Stat(configFile); err != nil {
		return nil, err
	}
	return os.ReadFile(configFile)
}
