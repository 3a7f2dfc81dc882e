// Package config defines the application configuration structure and its
// loading logic. Settings come from environment variables (prefix TRACKER_)
// with an optional config.yaml file underneath them, and are validated before
// the application starts.
package config
