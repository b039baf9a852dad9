package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/memberdesk/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("memberdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.S3.Bucket, "bucket", cfg.S3.Bucket, "S3 bucket for uploads")

	if err := fs.Parse(flagx.Filter(args, "u", "t", "d", "l", "bucket")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
