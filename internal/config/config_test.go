package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)
	assert.NoFileExists(t, GetConfigFilePath())
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path := filepath.Join(home, "riftdata", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data_dir = \"/srv/cards\"\noutput = \"expert.json\"\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/cards", config.DataDir)
	assert.Equal(t, "expert.json", config.Output)
}

func TestLoadConfigInvalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path := filepath.Join(home, "riftdata", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data_dir = "), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestInitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, created, err := InitConfig()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultOutput, config.Output)
	assert.FileExists(t, GetConfigFilePath())

	again, created, err := InitConfig()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, config, again)
}

func TestResolve(t *testing.T) {
	config := &Config{DataDir: "/srv/cards", ImagesCSV: "/abs/images.csv", Output: "expert.json"}

	paths := config.Resolve(Paths{CardsCSV: "cards.csv"})
	assert.Equal(t, Paths{
		CardsCSV:   "cards.csv",
		ImagesCSV:  "/abs/images.csv",
		LegacyJSON: filepath.Join("/srv/cards", DefaultLegacyJSON),
		Output:     filepath.Join("/srv/cards", "expert.json"),
	}, paths)
}
