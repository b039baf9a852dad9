package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type envConfig struct {
	BaseURL        string        `env:"MEMBERDESK_BASE_URL"`
	RequestTimeout time.Duration `env:"MEMBERDESK_REQUEST_TIMEOUT"`
	DataDir        string        `env:"MEMBERDESK_DATA_DIR"`
	LogLevel       string        `env:"MEMBERDESK_LOG_LEVEL"`
	S3Region       string        `env:"MEMBERDESK_S3_REGION"`
	S3Bucket       string        `env:"MEMBERDESK_S3_BUCKET"`
	S3Endpoint     string        `env:"MEMBERDESK_S3_ENDPOINT"`
	S3AccessKey    string        `env:"MEMBERDESK_S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"MEMBERDESK_S3_SECRET_KEY"`
	S3PublicURL    string        `env:"MEMBERDESK_S3_PUBLIC_URL"`
}

// parseEnv loads envFile into the environment (existing variables win) and
// overlays every MEMBERDESK_* variable that is set.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("decode environment: %w", err)
	}

	setString(&cfg.BaseURL, ec.BaseURL)
	setString(&cfg.DataDir, ec.DataDir)
	setString(&cfg.LogLevel, ec.LogLevel)
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	setString(&cfg.S3.Region, ec.S3Region)
	setString(&cfg.S3.Bucket, ec.S3Bucket)
	setString(&cfg.S3.Endpoint, ec.S3Endpoint)
	setString(&cfg.S3.AccessKey, ec.S3AccessKey)
	setString(&cfg.S3.SecretKey, ec.S3SecretKey)
	setString(&cfg.S3.PublicBaseURL, ec.S3PublicURL)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
