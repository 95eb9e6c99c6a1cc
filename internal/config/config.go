package config

import (
	"os"
	"path/filepath"

	"github.com/julienpequegnot/docdist/internal/document"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Loader  LoaderConfig  `yaml:"loader"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
}

type LoaderConfig struct {
	Punctuation string `yaml:"punctuation"`
	Lowercase   bool   `yaml:"lowercase"`
}

type OutputConfig struct {
	Precision int `yaml:"precision"`
	Top       int `yaml:"top"`
}

type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			Punctuation: document.DefaultPunctuation,
			Lowercase:   true,
		},
		Output: OutputConfig{
			Precision: 4,
			Top:       0,
		},
		History: HistoryConfig{
			Enabled: false,
		},
	}
}

// NewLoader builds a document loader from the loader settings.
func (c *Config) NewLoader() *document.Loader {
	return document.NewLoader(c.Loader.Punctuation, c.Loader.Lowercase)
}

func Dir() string {
	if dir := os.Getenv("DOCDIST_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".docdist")
}

func DBPath() string {
	return filepath.Join(Dir(), "docdist.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
