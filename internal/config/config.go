package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultSourceDir   = "~/Pictures/Screenshots"
	DefaultDestDir     = "~/Pictures/Misc"
	DefaultPattern     = "Screenshot from *.png"
	DefaultHistoryPath = "~/.local/share/shotwiz/shotwiz.db"
	DefaultExtension   = "png"

	envPrefix = "SHOTWIZ"
)

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age"`
}

// Config is passed explicitly to every component. There is no config file;
// values come from defaults and SHOTWIZ_* environment variables.
type Config struct {
	SourceDir      string       `mapstructure:"source_dir"`
	DestDir        string       `mapstructure:"dest_dir"`
	Pattern        string       `mapstructure:"pattern"`
	HistoryPath    string       `mapstructure:"history_path"`
	HistoryEnabled bool         `mapstructure:"history"`
	Logger         LoggerConfig `mapstructure:"log"`
}

// Default returns the built-in configuration with unexpanded paths.
func Default() Config {
	return Config{
		SourceDir:      DefaultSourceDir,
		DestDir:        DefaultDestDir,
		Pattern:        DefaultPattern,
		HistoryPath:    DefaultHistoryPath,
		HistoryEnabled: true,
		Logger: LoggerConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("source_dir", d.SourceDir)
	v.SetDefault("dest_dir", d.DestDir)
	v.SetDefault("pattern", d.Pattern)
	v.SetDefault("history_path", d.HistoryPath)
	v.SetDefault("history", d.HistoryEnabled)
	v.SetDefault("log.level", d.Logger.Level)
	v.SetDefault("log.file", d.Logger.File)
	v.SetDefault("log.max_size", d.Logger.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Logger.MaxBackups)
	v.SetDefault("log.max_age", d.Logger.MaxAgeDays)
}

// Load resolves the configuration from defaults and the environment, expands
// home-relative paths and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	for _, p := range []*string{&c.SourceDir, &c.DestDir, &c.HistoryPath, &c.Logger.File} {
		*p = strings.TrimSpace(*p)
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	c.Logger.Level = strings.ToLower(strings.TrimSpace(c.Logger.Level))
	return nil
}

// Validate checks that required fields are set and the pattern is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.SourceDir == "" {
		errs = append(errs, errors.New("source_dir must be set"))
	}
	if c.DestDir == "" {
		errs = append(errs, errors.New("dest_dir must be set"))
	}
	if strings.TrimSpace(c.Pattern) == "" {
		errs = append(errs, errors.New("pattern must be set"))
	} else if strings.ContainsRune(c.Pattern, '/') {
		errs = append(errs, fmt.Errorf("pattern %q must match file names, not paths", c.Pattern))
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		errs = append(errs, errors.New("history_path must be set when history is enabled"))
	}
	return errors.Join(errs...)
}
