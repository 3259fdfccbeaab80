package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings read from .fundflow.yaml and FUNDFLOW_* env.
type Config interface {
	BasePath() string
	CatalogPath() string
	LogFile() string
	LogLevel() string
}

// LoadConfig reads the config file, if any, and the environment.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.fundflow")
	v.SetDefault("catalog", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetConfigName(".fundflow") // .yaml is implicit
	v.SetEnvPrefix("FUNDFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("FUNDFLOW_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &fileConfig{
		Path:    v.GetString("path"),
		Catalog: v.GetString("catalog"),
		Log:     v.GetString("log.file"),
		Level:   v.GetString("log.level"),
	}
	var err error
	for _, p := range []*string{&cfg.Path, &cfg.Catalog, &cfg.Log} {
		if *p == "" {
			continue
		}
		if *p, err = homedir.Expand(*p); err != nil {
			return nil, fmt.Errorf("store: expand %q: %w", *p, err)
		}
	}
	return cfg, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Catalog string `json:"catalog"`
	Log     string `json:"log"`
	Level   string `json:"level"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) CatalogPath() string { return f.Catalog }
func (f *fileConfig) LogFile() string     { return f.Log }
func (f *fileConfig) LogLevel() string    { return f.Level }
