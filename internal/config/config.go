package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the few knobs a single-clinic install can turn.
type Config struct {
	DataDir      string `mapstructure:"data_dir"`
	DatabaseFile string `mapstructure:"database_file"`
	LogLevel     string `mapstructure:"log_level"`
}

// Load reads an optional config.yaml from the data dir. A missing file
// is not an error; defaults cover a fresh install.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	defaultDir := filepath.Join(home, ".clinigo")

	v := viper.New()
	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("database_file", "clinigo.db")
	v.SetDefault("log_level", "warn")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDir)
	v.SetEnvPrefix("CLINIGO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabasePath returns the full path of the sqlite file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}
