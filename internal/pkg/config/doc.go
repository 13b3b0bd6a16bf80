// Package config provides functionality for loading and managing application
// configuration.
//
// Settings are read from YAML files, overridable through the environment, and
// validated before anything consumes them, so a malformed deployment fails at
// startup rather than at first use.
package config
