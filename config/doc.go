// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, then overridden by environment
// variables (optionally read from a .env file), and validated using struct
// tags. Every value has a default so the service runs without a config file.
package config
