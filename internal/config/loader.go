package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load, e.g. EVSEQ_SEED.
const EnvPrefix = "EVSEQ"

// NewViper returns a viper instance with the defaults and environment
// bindings set. Callers may bind command-line flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional YAML config file at path into v and returns the
// validated configuration. Flags bound to v take precedence over the
// environment, the environment over the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	cfg.Seed = v.GetUint64("seed")
	cfg.Compression = v.GetString("compression")
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFormat = v.GetString("log_format")
	cfg.ProgressEvery = v.GetInt("progress_every")

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("compression", "zstd")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetDefault("progress_every", 1000)
}
