package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type GeneratorConfig struct {
	Toolchain       string `mapstructure:"toolchain"`
	DocPrivateItems bool   `mapstructure:"doc_private_items"`
}

type Config struct {
	Crates    []string        `mapstructure:"crates"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// cacheBase returns the base cache directory for quarry.
// Checks XDG_CACHE_HOME, then ~/.cache, then /tmp/quarry as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "quarry")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "quarry")
	}
	return filepath.Join(os.TempDir(), "quarry")
}

// DBPath returns the path to the DuckDB export database file.
func DBPath() string {
	return filepath.Join(cacheBase(), "registry.db")
}

// JSONCacheDir returns the path to the rustdoc JSON cache directory.
func JSONCacheDir() string {
	return filepath.Join(cacheBase(), "json")
}

// DocTargetDir returns the cargo target directory used for rustdoc JSON
// generation.
func DocTargetDir() string {
	return filepath.Join(cacheBase(), "target")
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "quarry"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "quarry"))
	}

	viper.SetDefault("crates", []string{"std", "alloc", "core"})
	viper.SetDefault("generator.toolchain", "nightly")
	viper.SetDefault("generator.doc_private_items", true)

	viper.SetEnvPrefix("QUARRY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// stringToSliceHookFunc lets QUARRY_CRATES be set as a comma-separated
// string from the environment while the config file uses a TOML array.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf([]string{}) || f.Kind() != reflect.String {
			return data, nil
		}
		raw := strings.Split(data.(string), ",")
		out := make([]string, 0, len(raw))
		for _, s := range raw {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToSliceHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.Crates) == 0 {
		config.Crates = []string{"std", "alloc", "core"}
	}
	if config.Generator.Toolchain == "" {
		config.Generator.Toolchain = "nightly"
	}

	return &config, nil
}
