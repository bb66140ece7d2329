package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig holds raw environment values. Empty or unset variables leave the
// corresponding Config field untouched.
type envConfig struct {
	EndpointAddrHTTP   string        `env:"DIARY_HTTP_ADDR"`
	EndpointAddrGRPC   string        `env:"DIARY_GRPC_ADDR"`
	DatabaseDSN        string        `env:"DIARY_DATABASE_DSN"`
	SecretKey          string        `env:"DIARY_JWT_SECRET"`
	LogLevel           string        `env:"DIARY_LOG_LEVEL"`
	ShutdownTimeout    time.Duration `env:"DIARY_SHUTDOWN_TIMEOUT"`
	S3RootUser         string        `env:"DIARY_S3_USER"`
	S3RootPassword     string        `env:"DIARY_S3_PASSWORD"`
	S3Bucket           string        `env:"DIARY_S3_BUCKET"`
	S3Region           string        `env:"DIARY_S3_REGION"`
	S3BaseEndpoint     string        `env:"DIARY_S3_ENDPOINT"`
	ExportLinkValidity time.Duration `env:"DIARY_EXPORT_LINK_VALIDITY"`
}

// parseEnv overlays DIARY_* variables from environ onto config.
func parseEnv(config *Config, environ map[string]string) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	overlay(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	overlay(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	overlay(&config.DatabaseDSN, e.DatabaseDSN)
	overlay(&config.SecretKey, e.SecretKey)
	overlay(&config.LogLevel, e.LogLevel)
	overlay(&config.S3RootUser, e.S3RootUser)
	overlay(&config.S3RootPassword, e.S3RootPassword)
	overlay(&config.S3Bucket, e.S3Bucket)
	overlay(&config.S3Region, e.S3Region)
	overlay(&config.S3BaseEndpoint, e.S3BaseEndpoint)
	overlay(&config.ShutdownTimeout, e.ShutdownTimeout)
	overlay(&config.ExportLinkValidity, e.ExportLinkValidity)
	return nil
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
