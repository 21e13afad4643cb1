package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt   = "evlite> "
	DefaultEngine   = "btree"
	DefaultDegree   = 16
	DefaultLogLevel = "info"
)

// Color modes for ShellConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Index IndexConfig `yaml:"index"`
	Log   LogConfig   `yaml:"log"`
}

type ShellConfig struct {
	Prompt string `yaml:"prompt"`
	Color  string `yaml:"color"` // auto | always | never
}

type IndexConfig struct {
	Engine string `yaml:"engine"` // btree | memtable | sqlite
	Degree int    `yaml:"degree"` // minimum branching factor, 0 = default
}

type LogConfig struct {
	Level string `yaml:"level"` // error | info | debug
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: DefaultPrompt,
			Color:  ColorAuto,
		},
		Index: IndexConfig{
			Engine: DefaultEngine,
			Degree: DefaultDegree,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/evlite.yaml", "evlite.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in settings left empty by a config file. An explicit
// degree is kept as is, so that an invalid one is rejected by the index.
func applyDefaults(cfg *Config) {
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = DefaultPrompt
	}
	switch cfg.Shell.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		cfg.Shell.Color = ColorAuto
	}
	if cfg.Index.Engine == "" {
		cfg.Index.Engine = DefaultEngine
	}
	if cfg.Index.Degree == 0 {
		cfg.Index.Degree = DefaultDegree
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
