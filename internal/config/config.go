package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper/internal/mines"
)

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Mode    string    `mapstructure:"mode"`
	Addr    string    `mapstructure:"addr"`
	Origins []string  `mapstructure:"origins"`
	Width   int       `mapstructure:"width"`
	Height  int       `mapstructure:"height"`
	Level   string    `mapstructure:"level"`
	Log     LogConfig `mapstructure:"log"`
}

func Default() *Config {
	return &Config{
		Mode:   "development",
		Addr:   ":8080",
		Width:  10,
		Height: 10,
		Level:  "0",
		Log: LogConfig{
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// newViper knows every key of [Config] so that MINES_* variables (MINES_LOG_FILE
// for log.file) override them.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("MINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("addr", defaults.Addr)
	v.SetDefault("origins", defaults.Origins)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("level", defaults.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
	return v
}

// Load starts from [Default], applies the JSON file at path (if any) and then
// the MINES_* environment variables.
func Load(path string) (*Config, error) {
	v := newViper(Default())
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Config) Validate() error {
	if c.Mode != "development" && c.Mode != "production" {
		return fmt.Errorf("mode must be 'development' or 'production', got %q", c.Mode)
	}
	if _, err := c.GameParams(); err != nil {
		return err
	}
	return nil
}

func (c Config) GameParams() (mines.GameParams, error) {
	level, err := mines.ParseDifficulty(c.Level)
	if err != nil {
		return mines.GameParams{}, err
	}
	params := mines.GameParams{Width: c.Width, Height: c.Height, Level: level}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"origins":          c.Origins,
		"width":            c.Width,
		"height":           c.Height,
		"level":            c.Level,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}
