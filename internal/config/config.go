package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Provider names
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderOpenAI     = "openai"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig holds default values for flags not given on the command line
type DefaultsConfig struct {
	Provider    string `yaml:"provider"`
	Language    string `yaml:"language"`
	OutputDir   string `yaml:"output_dir"`
	SpeechModel string `yaml:"speech_model"`
	Punctuate   bool   `yaml:"punctuate"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Provider:    ProviderAssemblyAI,
			Language:    "ru",
			OutputDir:   "out",
			SpeechModel: "universal",
			Punctuate:   true,
		},
	}
}

// DefaultModel returns the model used by a provider when none is configured
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "whisper-1"
	default:
		return "universal"
	}
}

// AppDir returns the application directory (~/.aai-transcribe)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aai-transcribe"
	}
	return filepath.Join(home, ".aai-transcribe")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnvPath returns the per-user .env file path
func EnvPath() string {
	return filepath.Join(AppDir(), ".env")
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal encodes the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
