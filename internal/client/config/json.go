package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/flagx"
)

// duration accepts "30s"-style strings or integer nanoseconds.
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		parsed, err := time.ParseDuration(x)
		if err != nil {
			return err
		}
		*d = duration(parsed)
	case float64:
		*d = duration(time.Duration(x))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

type jsonConfig struct {
	BaseURL        string   `json:"base_url"`
	RequestTimeout duration `json:"request_timeout"`
	DataDir        string   `json:"data_dir"`
	LogLevel       string   `json:"log_level"`
	S3             struct {
		Region        string `json:"region"`
		Bucket        string `json:"bucket"`
		Endpoint      string `json:"endpoint"`
		AccessKey     string `json:"access_key"`
		SecretKey     string `json:"secret_key"`
		PublicBaseURL string `json:"public_base_url"`
	} `json:"s3"`
}

// parseJSON overlays the fields present in the file named by -c/-config.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout)
	}
	setString(&cfg.S3.Region, jc.S3.Region)
	setString(&cfg.S3.Bucket, jc.S3.Bucket)
	setString(&cfg.S3.Endpoint, jc.S3.Endpoint)
	setString(&cfg.S3.AccessKey, jc.S3.AccessKey)
	setString(&cfg.S3.SecretKey, jc.S3.SecretKey)
	setString(&cfg.S3.PublicBaseURL, jc.S3.PublicBaseURL)
	return nil
}
