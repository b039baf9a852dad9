// Package config loads runtime configuration for the memberdesk CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then the process environment
//     (MEMBERDESK_* variables).
//  3. An optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Flags
//
//	-u string   backend base URL
//	-t duration request timeout (e.g. 30s)
//	-d string   local data directory
//	-l string   log level (debug, info, warn, error)
//	-bucket string  S3 bucket for uploads; empty uploads through the backend
//
// JSON
//
//	{
//	  "base_url": "https://api.example.org",
//	  "request_timeout": "30s",
//	  "data_dir": ".memberdesk",
//	  "log_level": "info",
//	  "s3": {"region": "ap-south-1", "bucket": "receipts"}
//	}
package config
