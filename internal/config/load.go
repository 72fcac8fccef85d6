package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. AUTORES_SERVER_PORT.
const EnvPrefix = "AUTORES"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8081)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("upstream.base_url", "http://ceron-eng.somee.com/api/Autor")
	v.SetDefault("upstream.insecure_skip_verify", true)
	v.SetDefault("upstream.timeout", "0s")

	v.SetDefault("image_service.addr", "localhost:5272")
	v.SetDefault("image_service.timeout", "0s")

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_memory_bytes", 32<<20)
	v.SetDefault("upload.default_guid", "some-guid")

	v.SetDefault("gateway.enrich_author_image", true)
	v.SetDefault("gateway.raw_image_route", true)
}

// bindEnvs makes every known key visible to Unmarshal, which ignores
// AutomaticEnv values for keys it has not seen.
func bindEnvs(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}
}
