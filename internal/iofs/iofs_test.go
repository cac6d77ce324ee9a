package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "wbcharts"),
		filepath.Join(tmpDir, ".local", "share", "wbcharts", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestTouchDirExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(dir, 0700))

	require.NoError(t, touchDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm(),
		"existing directory should not be modified")
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	configPath := filepath.Join(tmpDir, ".config", "wbcharts", "config.yaml")

	t.Run("writes template", func(t *testing.T) {
		require.NoError(t, EnsureConfigFile(tmpDir))
		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, ConfigYAML, string(content))

		info, err := os.Stat(configPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("keeps user file", func(t *testing.T) {
		custom := "charts:\n  end_year: 2010\n"
		require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))

		require.NoError(t, EnsureConfigFile(tmpDir))
		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, custom, string(content))
	})
}

func TestEnsureConfigFileNoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// TestConfigYAML checks that the template parses and carries the
// default selection.
func TestConfigYAML(t *testing.T) {
	var cfg struct {
		API struct {
			BaseURL string `yaml:"base_url"`
			Timeout int    `yaml:"timeout"`
		} `yaml:"api"`
		Charts struct {
			Countries []struct {
				Name string `yaml:"name"`
				ISO3 string `yaml:"iso3"`
			} `yaml:"countries"`
			StartYear     int    `yaml:"start_year"`
			EndYear       int    `yaml:"end_year"`
			FailurePolicy string `yaml:"failure_policy"`
		} `yaml:"charts"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	assert.Equal(t, "http://api.worldbank.org/v2", cfg.API.BaseURL)
	assert.Equal(t, 60, cfg.API.Timeout)
	assert.Len(t, cfg.Charts.Countries, 10)
	assert.Equal(t, "CAN", cfg.Charts.Countries[0].ISO3)
	assert.Equal(t, 1990, cfg.Charts.StartYear)
	assert.Equal(t, 2014, cfg.Charts.EndYear)
	assert.Equal(t, "empty", cfg.Charts.FailurePolicy)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, []byte("[]")))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))

	err = WriteFile(filepath.Join(t.TempDir(), "no", "out.json"), nil)
	assert.Error(t, err)
}
