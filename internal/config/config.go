// Package config loads tool settings from YAML, layering workspace
// and working-directory files under any path given explicitly on the
// command line. Missing files fall back to defaults; a path the user
// named that does not exist is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/BaryoDev/NovelAssistant/internal/workspace"
)

type Config struct {
	Extensions    []string `mapstructure:"extensions"`
	StripMarkdown bool     `mapstructure:"strip_markdown"`
	LexiconPath   string   `mapstructure:"lexicon_path"`
	DatabasePath  string   `mapstructure:"database_path"`
	WordGoal      int      `mapstructure:"word_goal"`
	Workers       int      `mapstructure:"workers"`
	Format        string   `mapstructure:"format"`
	Debug         bool     `mapstructure:"debug"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Extensions:    []string{".md", ".markdown", ".txt"},
		StripMarkdown: true,
		Format:        "table",
	}
}

// Load reads configuration from configPath when given, otherwise from
// config.yaml in the workspace configs directory or the current
// directory. Environment variables prefixed NVA_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, workspace.BaseDirName, "configs"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("NVA")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("extensions", def.Extensions)
	v.SetDefault("strip_markdown", def.StripMarkdown)
	v.SetDefault("lexicon_path", "")
	v.SetDefault("database_path", "")
	v.SetDefault("word_goal", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("format", def.Format)
	v.SetDefault("debug", false)
}
