package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the ritual data is kept.
type Config interface {
	BasePath() string
	CatalogPath() string
	RecentCap() int
	LogFile() string
	LogLevel() string
}

// DefaultRecentCap bounds the recently viewed list.
const DefaultRecentCap = 10

// LoadConfig reads .ritual.yaml from $RITUAL_CONFIG_PATH or the working
// directory, with RITUAL_* environment variables taking precedence.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ritual.db")
	viper.SetDefault("catalog", "")
	viper.SetDefault("recent_cap", DefaultRecentCap)
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.level", "warn")
	viper.SetConfigName(".ritual") // .yaml is implicit
	viper.SetEnvPrefix("RITUAL")
	viper.AutomaticEnv()

	if override := os.Getenv("RITUAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	catalog, err := homedir.Expand(viper.GetString("catalog"))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(viper.GetString("log.file"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Catalog: catalog,
		Recent:  viper.GetInt("recent_cap"),
		Log:     logFile,
		Level:   viper.GetString("log.level"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Catalog string `json:"catalog,omitempty"`
	Recent  int    `json:"recent_cap"`
	Log     string `json:"log_file,omitempty"`
	Level   string `json:"log_level"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) CatalogPath() string {
	return f.Catalog
}

func (f *fileConfig) RecentCap() int {
	if f.Recent <= 0 {
		return DefaultRecentCap
	}
	return f.Recent
}

func (f *fileConfig) LogFile() string {
	return f.Log
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}
