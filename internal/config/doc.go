// Package config handles application configuration loading and validation.
//
// Configuration is loaded from environment variables with sensible defaults.
// All required values are validated at startup to fail fast if misconfigured.
package config
