package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default file names, looked up in the data directory
const (
	DefaultCardsCSV   = "RiftboundCardData  - All Current Card Data (1).csv"
	DefaultImagesCSV  = "RiftboundCardData_Images.csv"
	DefaultLegacyJSON = "riftbound_card_data.json"
	DefaultOutput     = "riftbound_data_expert (1).json"
)

// Config represents the application configuration
type Config struct {
	DataDir    string `toml:"data_dir"`
	CardsCSV   string `toml:"cards_csv"`
	ImagesCSV  string `toml:"images_csv"`
	LegacyJSON string `toml:"legacy_json"`
	Output     string `toml:"output"`
}

// Paths holds the resolved input and output files of a rebuild
type Paths struct {
	CardsCSV   string
	ImagesCSV  string
	LegacyJSON string
	Output     string
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "riftdata", "config.toml")
}

// DefaultDataDir returns the directory holding the riftdata executable
func DefaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// LoadConfig loads the config file. A missing file yields an empty config.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// InitConfig writes a default config file unless one already exists. It
// reports whether a new file was created.
func InitConfig() (*Config, bool, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig()
		return config, false, err
	}

	config, err := createDefaultConfig()
	if err != nil {
		return nil, false, err
	}
	return config, true, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		DataDir:    DefaultDataDir(),
		CardsCSV:   DefaultCardsCSV,
		ImagesCSV:  DefaultImagesCSV,
		LegacyJSON: DefaultLegacyJSON,
		Output:     DefaultOutput,
	}

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// Resolve picks each path from flags first, then the config file, then the
// default file name. Relative config paths are taken from the data directory.
func (c *Config) Resolve(flags Paths) Paths {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	pick := func(flag, configured, fallback string) string {
		if flag != "" {
			return flag
		}
		name := configured
		if name == "" {
			name = fallback
		}
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dataDir, name)
	}

	return Paths{
		CardsCSV:   pick(flags.CardsCSV, c.CardsCSV, DefaultCardsCSV),
		ImagesCSV:  pick(flags.ImagesCSV, c.ImagesCSV, DefaultImagesCSV),
		LegacyJSON: pick(flags.LegacyJSON, c.LegacyJSON, DefaultLegacyJSON),
		Output:     pick(flags.Output, c.Output, DefaultOutput),
	}
}
