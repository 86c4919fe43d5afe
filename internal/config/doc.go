// SPDX-License-Identifier: MPL-2.0

// Package config handles idevctl configuration using Viper.
//
// Configuration is read from config.cue or config.toml in the idevctl config
// directory ($XDG_CONFIG_HOME/idevctl on Linux, ~/Library/Application
// Support/idevctl on macOS, %APPDATA%\idevctl on Windows), then from the
// working directory, unless --config names a file. Both formats are validated
// against the embedded CUE schema (config_schema.cue). IDEVCTL_* environment
// variables override file values, e.g. IDEVCTL_LOG_LEVEL=debug.
package config
