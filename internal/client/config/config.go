package config

import (
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DataDir        string
	LogLevel       string
	S3             S3
}

// S3 configures direct uploads. An empty Bucket disables them.
type S3 struct {
	Region        string
	Bucket        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.DataDir = ".memberdesk"
	c.LogLevel = "info"
	c.S3.Region = "us-east-1"
}

// Load builds a Config from defaults, envFile (skipped if missing), the
// environment, the JSON file named in args, then the flags in args.
func Load(args []string, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
