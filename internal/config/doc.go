// Package config manages user-level settings stored at ~/.feynman/config.yaml.
// Viper merges the file with FEYNMAN_-prefixed environment variables; API keys
// are read from the environment only and never persisted.
package config
