// Package config loads the server configuration from environment
// variables, command-line flags and an optional JSON file, merges the
// sources with mergo and validates the result before startup.
package config
