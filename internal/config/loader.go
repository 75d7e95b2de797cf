package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mash-protocol/durunit/pkg/durationhook"
)

// EnvPrefix prefixes environment overrides, e.g. DURFMT_REPL_MAX_SESSION.
const EnvPrefix = "DURFMT"

// ConfigName is the base name of the config file searched for when no
// explicit path is given.
const ConfigName = "durfmt"

// DefaultDotEnvFiles are loaded when Load is given no .env paths.
var DefaultDotEnvFiles = []string{".env"}

// NewViper returns a viper instance with defaults and environment
// overrides set up. Callers bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "warn")

	v.SetDefault("repl.prompt", "durfmt> ")
	v.SetDefault("repl.history_file", "")
	v.SetDefault("repl.journal", "")
	v.SetDefault("repl.max_session", "0s")
}

// Load reads configuration into a Config.
//
// .env files are loaded first and never override variables already in
// the environment. configFile, when set, must exist; otherwise
// durfmt.yaml is looked up in the working directory and the user config
// directory and skipped if absent.
func Load(v *viper.Viper, configFile string, dotEnvFiles ...string) (*Config, error) {
	if len(dotEnvFiles) == 0 {
		dotEnvFiles = DefaultDotEnvFiles
	}
	if err := loadDotEnv(dotEnvFiles); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		durationhook.StringToDuration(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads each existing file. Missing files are skipped.
func loadDotEnv(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, ConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}
