package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Upstream     UpstreamConfig     `mapstructure:"upstream" validate:"required"`
	ImageService ImageServiceConfig `mapstructure:"image_service" validate:"required"`
	Upload       UploadConfig       `mapstructure:"upload" validate:"required"`
	Gateway      GatewayConfig      `mapstructure:"gateway"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// UpstreamConfig configures the REST service that owns author data.
type UpstreamConfig struct {
	BaseURL            string `mapstructure:"base_url" validate:"required,url"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"`
	// Timeout of zero means requests are never cut short.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// ImageServiceConfig configures the gRPC image service connection.
type ImageServiceConfig struct {
	Addr    string        `mapstructure:"addr" validate:"required,hostname_port"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// UploadConfig configures staging of multipart uploads on local disk.
type UploadConfig struct {
	Dir            string `mapstructure:"dir" validate:"required"`
	MaxMemoryBytes int64  `mapstructure:"max_memory_bytes" validate:"gt=0"`
	DefaultGUID    string `mapstructure:"default_guid" validate:"required"`
}

// GatewayConfig toggles the optional composition behaviors.
type GatewayConfig struct {
	EnrichAuthorImage bool `mapstructure:"enrich_author_image"`
	RawImageRoute     bool `mapstructure:"raw_image_route"`
}
