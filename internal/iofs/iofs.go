// Package iofs prepares the file system for wbcharts: config and log
// directories and the initial config.yaml.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/wbcharts/pkg/config"
)

// ConfigYAML is the template of config.yaml written on the first run.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates the config and log directories under homeDir if
// they do not exist.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteFile writes data to path, creating or truncating the file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
