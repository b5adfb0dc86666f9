// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The file is optional: defaults cover the zero-config case, and TAN_*
// environment variables (optionally from a .env file) override file values.
package config
