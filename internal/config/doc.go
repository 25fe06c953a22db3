// Package config defines the application configuration and loads it from
// environment variables and optional config files via viper, validating
// the result with go-playground/validator struct tags.
package config
