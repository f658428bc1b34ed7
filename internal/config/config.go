package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config is the root configuration of the shuffle CLI.
type Config struct {
	Logger  LoggerConfig `yaml:"logger"`
	Codecs  CodecsConfig `yaml:"codecs"`
	Group   GroupConfig  `yaml:"group"`
	Metrics bool         `yaml:"metrics"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// CodecsConfig names the codecs used for keys and values (see codecs.String).
type CodecsConfig struct {
	Key      string `yaml:"key"`
	Value    string `yaml:"value"`
	Compress string `yaml:"compress"`
}

type GroupConfig struct {
	Spill     bool   `yaml:"spill"`
	Dir       string `yaml:"dir"`
	BatchSize int    `yaml:"batch_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "INFO",
			JSON:  false,
		},
		Codecs: CodecsConfig{
			Key:      "utf8",
			Value:    "utf8",
			Compress: "none",
		},
		Group: GroupConfig{
			Spill:     false,
			BatchSize: 1024,
		},
	}
}

// Load reads a YAML file over Default, so a file only needs the fields it
// changes. A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("config file not found, using default config", "path", path)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if _, err := cfg.Logger.SlogLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SlogLevel parses Level case-insensitively.
func (l LoggerConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("config: logger level %q: %w", l.Level, err)
	}
	return lvl, nil
}
